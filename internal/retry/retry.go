// Package retry provides a bounded retry-with-backoff wrapper for LLM calls.
// Failures are classified by their typed kind (see internal/llm): fatal
// failures propagate immediately, rate/availability failures back off more
// aggressively than other transient ones.
package retry

import (
	"context"
	"math/rand"
	"time"

	"github.com/mtruong/skillswap/internal/llm"
)

const (
	// DefaultMaxAttempts is the default attempt cap per operation.
	DefaultMaxAttempts = 3
	// DefaultBaseDelay is the default backoff base.
	DefaultBaseDelay = 1 * time.Second
)

// Operation is a single retryable unit of work.
type Operation func(ctx context.Context) (string, error)

// Policy controls retry behavior. The zero value is not usable; construct
// with NewPolicy so defaults and the random source are set.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration

	// rng drives jitter. Injected so tests can fix the seed.
	rng *rand.Rand
	// sleep is swapped out in tests to avoid real waiting.
	sleep func(ctx context.Context, d time.Duration) error

	// OnRetry, when set, observes each scheduled retry. It is called with
	// the attempt number that just failed, the computed delay, and the error.
	OnRetry func(attempt int, delay time.Duration, err error)
}

// Option customizes a Policy.
type Option func(*Policy)

// WithMaxAttempts sets the attempt cap. Values below 1 are clamped to 1.
func WithMaxAttempts(n int) Option {
	return func(p *Policy) {
		if n < 1 {
			n = 1
		}
		p.MaxAttempts = n
	}
}

// WithBaseDelay sets the backoff base.
func WithBaseDelay(d time.Duration) Option {
	return func(p *Policy) { p.BaseDelay = d }
}

// WithRand injects the jitter source.
func WithRand(rng *rand.Rand) Option {
	return func(p *Policy) { p.rng = rng }
}

// WithOnRetry sets the retry observer.
func WithOnRetry(fn func(attempt int, delay time.Duration, err error)) Option {
	return func(p *Policy) { p.OnRetry = fn }
}

// WithSleep overrides the delay function. Tests inject this to observe
// computed delays without waiting.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(p *Policy) { p.sleep = fn }
}

// NewPolicy builds a Policy with defaults applied.
func NewPolicy(opts ...Option) *Policy {
	p := &Policy{
		MaxAttempts: DefaultMaxAttempts,
		BaseDelay:   DefaultBaseDelay,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Do runs op up to MaxAttempts times. Fatal failures (bad request, auth)
// return immediately. The last error is returned on exhaustion.
func (p *Policy) Do(ctx context.Context, op Operation) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		kind := llm.ClassifyError(err)
		if kind.Fatal() {
			return "", err
		}
		if attempt == p.MaxAttempts {
			break
		}

		delay := p.backoff(attempt, kind)
		if p.OnRetry != nil {
			p.OnRetry(attempt, delay, err)
		}
		if err := p.sleep(ctx, delay); err != nil {
			return "", err
		}
	}

	return "", lastErr
}

// backoff computes the delay after a failed attempt. Rate-limited and
// unavailable failures get a steeper exponent plus up to 2s of jitter;
// everything else gets the standard curve plus up to 1s.
func (p *Policy) backoff(attempt int, kind llm.Kind) time.Duration {
	switch kind {
	case llm.KindRateLimited, llm.KindUnavailable:
		return p.BaseDelay*(1<<attempt) + time.Duration(p.rng.Int63n(int64(2*time.Second)))
	default:
		return p.BaseDelay*(1<<(attempt-1)) + time.Duration(p.rng.Int63n(int64(time.Second)))
	}
}

// sleepContext waits for d without blocking other work, honoring ctx.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
