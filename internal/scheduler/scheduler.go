// Package scheduler drives live strategies: one loop per pair, ticks serialized
// across pairs, each loop re-armed with a jittered one-shot timer.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vadiminshakov/tickbot/internal/domain"
	"github.com/vadiminshakov/tickbot/internal/strategy"
	"github.com/vadiminshakov/tickbot/pkg/retrier"
)

// Bot one strategy trading one pair.
type Bot struct {
	Pair     domain.Pair
	Strategy strategy.Strategy
	// Interval wait after a successful tick, before jitter.
	Interval time.Duration
}

// Runtime owns the lock every tick runs under, so orders of different pairs
// never interleave with each other's balance reads.
type Runtime struct {
	mu     sync.Mutex
	policy *retrier.Policy
	logger *zap.Logger
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithPolicy replaces the rescheduling policy.
func WithPolicy(p *retrier.Policy) Option {
	return func(r *Runtime) {
		r.policy = p
	}
}

// New creates a runtime with a 1 to 10 second jitter.
func New(logger *zap.Logger, opts ...Option) *Runtime {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Runtime{
		policy: retrier.NewPolicy(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run starts a loop per bot and blocks until ctx is done or every strategy is exhausted.
func (r *Runtime) Run(ctx context.Context, bots []Bot) error {
	if len(bots) == 0 {
		return errors.Wrap(domain.ErrMalformedInput, "nothing to schedule")
	}
	for _, b := range bots {
		if b.Strategy == nil || b.Interval <= 0 {
			return errors.Wrapf(domain.ErrMalformedInput, "invalid bot for %s", b.Pair.String())
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, b := range bots {
		b := b
		g.Go(func() error {
			return r.loop(ctx, b)
		})
		r.logger.Info("started", zap.String("pair", b.Pair.String()), zap.String("strategy", b.Strategy.Name()))
	}

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

func (r *Runtime) loop(ctx context.Context, b Bot) error {
	logger := r.logger.With(zap.String("pair", b.Pair.String()), zap.String("strategy", b.Strategy.Name()))

	for {
		running, err := r.tick(ctx, b)
		if err != nil {
			logger.Error("tick failed", zap.Error(err))
		}
		if err == nil && !running {
			logger.Info("strategy exhausted, loop stopped", zap.Int("trades", b.Strategy.Stats().Trades()))
			return nil
		}

		delay := r.policy.Next(b.Interval, err == nil)
		logger.Debug("next tick scheduled", zap.Duration("in", delay))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Info("context done, stopping loop")
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (r *Runtime) tick(ctx context.Context, b Bot) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return b.Strategy.Tick(ctx)
}
