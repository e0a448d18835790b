package shamir

import (
	"fmt"
	"math/big"
	"sync"
)

// Collector gathers shares as they arrive and reconstructs the secret once the
// threshold is met. It is safe for concurrent use.
type Collector struct {
	threshold int
	// collected is keyed by the decimal form of x.
	collected map[string]*Share
	mu        sync.Mutex
}

// NewCollector creates a new collector with a given threshold.
func NewCollector(threshold int) (*Collector, error) {
	if threshold < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrInvalidThreshold, threshold)
	}
	return &Collector{
		threshold: threshold,
		collected: make(map[string]*Share),
	}, nil
}

// Add adds a share to the collector.
// If the number of collected shares reaches the threshold, it reconstructs the
// secret from them in ascending x order, clears the collected shares and
// returns the secret. Otherwise, it returns a nil secret and no error,
// indicating more shares are needed.
// The collected shares are cleared even when the reconstruction fails.
func (c *Collector) Add(share *Share) (*big.Int, error) {
	if share == nil || share.X == nil || share.Y == nil {
		return nil, fmt.Errorf("shamir: invalid share: cannot be nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := share.X.String()
	if _, ok := c.collected[key]; ok {
		return nil, fmt.Errorf("%w: x=%s already received", ErrDuplicateShare, key)
	}
	c.collected[key] = share
	if len(c.collected) < c.threshold {
		return nil, nil
	}

	points := make([]*Share, 0, len(c.collected))
	for _, s := range c.collected {
		points = append(points, s)
	}
	SortByX(points)
	c.collected = make(map[string]*Share)
	return Combine(points)
}

// Len returns the number of shares waiting for the threshold.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.collected)
}
