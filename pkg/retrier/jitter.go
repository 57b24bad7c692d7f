package retrier

import (
	"math/rand"
	"time"
)

const (
	defaultMinJitter = time.Second
	defaultMaxJitter = 10 * time.Second
)

// Policy delays between runs of a periodic loop. A successful run waits for the
// full interval plus jitter, a failed one only for the jitter.
type Policy struct {
	minJitter time.Duration
	maxJitter time.Duration
	random    func(n int64) int64
}

// PolicyOption configures a Policy.
type PolicyOption func(*Policy)

// WithJitterRange sets the bounds of the uniform jitter.
func WithJitterRange(lo, hi time.Duration) PolicyOption {
	return func(p *Policy) {
		p.minJitter, p.maxJitter = lo, hi
	}
}

// WithRandom replaces the random source, it must return a value in [0, n).
func WithRandom(fn func(n int64) int64) PolicyOption {
	return func(p *Policy) {
		p.random = fn
	}
}

// NewPolicy creates a policy with a 1 to 10 second jitter.
func NewPolicy(opts ...PolicyOption) *Policy {
	p := &Policy{
		minJitter: defaultMinJitter,
		maxJitter: defaultMaxJitter,
		random:    rand.Int63n,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.maxJitter < p.minJitter {
		p.maxJitter = p.minJitter
	}
	return p
}

// Jitter returns a uniform delay within the configured range.
func (p *Policy) Jitter() time.Duration {
	span := int64(p.maxJitter - p.minJitter)
	if span <= 0 {
		return p.minJitter
	}
	return p.minJitter + time.Duration(p.random(span+1))
}

// Next returns the delay before the run following one that took interval.
func (p *Policy) Next(interval time.Duration, succeeded bool) time.Duration {
	if succeeded {
		return interval + p.Jitter()
	}
	return p.Jitter()
}
