package shamir

import (
	"fmt"
	"math/big"
	"sort"
)

// ShareSet is the full collection of available shares together with the
// reconstruction threshold. Shares are kept in ascending x order.
type ShareSet struct {
	Threshold int
	// N is the share count announced by the source, 0 if unknown.
	N      int
	Shares []*Share
}

// NewShareSet returns a ShareSet over a sorted copy of shares.
func NewShareSet(threshold int, shares []*Share) (*ShareSet, error) {
	if threshold < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrInvalidThreshold, threshold)
	}
	sorted := make([]*Share, len(shares))
	copy(sorted, shares)
	SortByX(sorted)
	return &ShareSet{Threshold: threshold, Shares: sorted}, nil
}

// SortByX sorts shares by ascending x, keeping the input order of equal x.
func SortByX(shares []*Share) {
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].X.Cmp(shares[j].X) < 0
	})
}

// Select returns the shares to interpolate. Without positions it takes the
// first Threshold shares; otherwise positions must hold exactly Threshold
// 1-based indices into the ascending x order. Repeated positions are allowed
// through and fail later in Combine.
func (s *ShareSet) Select(positions ...int) ([]*Share, error) {
	k := s.Threshold
	if len(positions) == 0 {
		if len(s.Shares) < k {
			return nil, fmt.Errorf("%w: have %d, need k=%d", ErrInsufficientPoints, len(s.Shares), k)
		}
		out := make([]*Share, k)
		copy(out, s.Shares[:k])
		return out, nil
	}

	if len(positions) != k {
		return nil, fmt.Errorf("%w: got %d positions, need exactly k=%d", ErrInvalidSelection, len(positions), k)
	}
	out := make([]*Share, 0, k)
	for _, p := range positions {
		if p < 1 || p > len(s.Shares) {
			return nil, fmt.Errorf("%w: position %d out of range [1, %d]", ErrInvalidSelection, p, len(s.Shares))
		}
		out = append(out, s.Shares[p-1])
	}
	return out, nil
}

// Reconstruct selects shares as Select does and interpolates them at 0.
func (s *ShareSet) Reconstruct(positions ...int) (*big.Int, error) {
	points, err := s.Select(positions...)
	if err != nil {
		return nil, err
	}
	return Combine(points)
}

// ReconstructMod is Reconstruct over the prime field of the given order.
func (s *ShareSet) ReconstructMod(prime *big.Int, positions ...int) (*big.Int, error) {
	points, err := s.Select(positions...)
	if err != nil {
		return nil, err
	}
	return CombineMod(points, prime)
}
