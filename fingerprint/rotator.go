package fingerprint

import (
	"math/rand/v2"

	"github.com/samber/lo"
)

// Filter narrows the catalog subset eligible for a pick.
type Filter struct {
	Mobile *bool
}

// Rotator performs weighted-random selection over the identity
// catalog. It holds no mutable state and is safe for concurrent use.
type Rotator struct {
	entries []Identity
	randFn  func() float64
}

type RotatorOption func(*Rotator)

// WithRand injects the uniform random source, for deterministic tests.
func WithRand(fn func() float64) RotatorOption {
	return func(r *Rotator) {
		r.randFn = fn
	}
}

func NewRotator(opts ...RotatorOption) *Rotator {
	r := &Rotator{
		entries: catalog,
		randFn:  rand.Float64,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Pick draws one identity, weighted by catalog weight. Filtering by
// mobile/desktop never returns an entry from the wrong subset.
func (r *Rotator) Pick(filter *Filter) Identity {
	subset := r.entries
	if filter != nil && filter.Mobile != nil {
		subset = lo.Filter(r.entries, func(entry Identity, _ int) bool {
			return entry.Mobile == *filter.Mobile
		})
	}
	if len(subset) == 0 {
		return r.entries[0]
	}

	var totalWeight float64
	for _, entry := range subset {
		totalWeight += entry.Weight
	}
	cursor := r.randFn() * totalWeight
	for _, entry := range subset {
		cursor -= entry.Weight
		if cursor <= 0 {
			return entry
		}
	}
	// floating-point edge case: cursor never went non-positive
	return subset[0]
}
