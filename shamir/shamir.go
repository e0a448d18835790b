package shamir

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/izouxv/goReconstruct/fraction"
)

var (
	// ErrInsufficientPoints is returned when fewer shares than the threshold
	// are available.
	ErrInsufficientPoints = errors.New("shamir: not enough points")

	// ErrInvalidSelection is returned for an explicit position list of the
	// wrong length or with positions out of range.
	ErrInvalidSelection = errors.New("shamir: invalid selection")

	// ErrInvalidThreshold is returned for a threshold below 1.
	ErrInvalidThreshold = errors.New("shamir: invalid threshold")

	// ErrDuplicateShare is returned by Collector for a repeated x.
	ErrDuplicateShare = errors.New("shamir: duplicate share")

	// ErrInvalidPrime is returned by CombineMod for a nil or non-positive modulus.
	ErrInvalidPrime = errors.New("shamir: invalid prime")

	// ErrNoInverse is returned by CombineMod when a denominator is not
	// invertible modulo the prime.
	ErrNoInverse = errors.New("shamir: denominator not invertible")
)

// NonIntegerResultError is returned when the interpolated value at 0 is not a
// whole number, meaning the points do not lie on a common integer polynomial.
type NonIntegerResultError struct {
	Result fraction.Fraction
}

func (e *NonIntegerResultError) Error() string {
	return fmt.Sprintf("shamir: result not integer: %s", e.Result)
}

// Share represents a share of a secret.
type Share struct {
	X *big.Int
	Y *big.Int
}

func (s *Share) String() string {
	return fmt.Sprintf("(%s, %s)", s.X, s.Y)
}

// Combine reconstructs the secret f(0) from the given points using Lagrange
// interpolation over the rationals. Every point is used; the caller picks
// exactly k of them.
//
//	f(0) = Σᵢ yᵢ ∏ⱼ≠ᵢ (0 - xⱼ)/(xᵢ - xⱼ)
func Combine(points []*Share) (*big.Int, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no shares provided", ErrInsufficientPoints)
	}

	sum := fraction.Zero()
	for i, pi := range points {
		basis := fraction.One()
		for j, pj := range points {
			if i == j {
				continue
			}
			// (-xⱼ)/(xᵢ - xⱼ)
			term, err := fraction.New(new(big.Int).Neg(pj.X), new(big.Int).Sub(pi.X, pj.X))
			if err != nil {
				return nil, fmt.Errorf("shamir: basis for x=%s against x=%s: %w", pi.X, pj.X, err)
			}
			basis = basis.Mul(term)
		}
		sum = sum.Add(basis.MulInt(pi.Y))
	}

	secret, ok := sum.Int()
	if !ok {
		return nil, &NonIntegerResultError{Result: sum}
	}
	return secret, nil
}

// CombineMod reconstructs the secret from shares produced over the prime
// field of the given order.
func CombineMod(points []*Share, prime *big.Int) (*big.Int, error) {
	if prime == nil || prime.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrime, prime)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no shares provided", ErrInsufficientPoints)
	}

	secret := new(big.Int)

	for i, shareI := range points {
		// Calculate Lagrange basis polynomial l_i(0)
		num := big.NewInt(1)
		den := big.NewInt(1)

		for j, shareJ := range points {
			if i == j {
				continue
			}
			num.Mul(num, shareJ.X)
			den.Mul(den, new(big.Int).Sub(shareJ.X, shareI.X))
		}

		lIAt0 := new(big.Int).ModInverse(den.Mod(den, prime), prime)
		if lIAt0 == nil {
			return nil, fmt.Errorf("%w: basis for x=%s", ErrNoInverse, shareI.X)
		}
		lIAt0.Mul(lIAt0, num)
		lIAt0.Mod(lIAt0, prime)

		term := new(big.Int).Mul(shareI.Y, lIAt0)
		secret.Add(secret, term)
		secret.Mod(secret, prime)
	}

	return secret, nil
}
