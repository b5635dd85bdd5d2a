package retry

import (
	"context"
	"time"

	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"

	"github.com/cenkalti/backoff/v4"
)

const DefaultMaxRetries uint64 = 5

// Config tunes the exponential backoff, zero values fall back to defaults.
type Config struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxElapsedTime  time.Duration
	Multiplier      float64
}

type Retryer interface {
	// Retry keeps calling operation until it succeeds, the retries are
	// exhausted or ctx is done. The last error is passed to onGiveUp and
	// whatever onGiveUp returns is returned.
	Retry(ctx context.Context, name string, operation func() error, onGiveUp func(err error) error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	cfg Config
}

// NewExponentialBackOff is used for startup dependencies (postgres, redis)
// that may come up a few seconds after the service does.
func NewExponentialBackOff(cfg Config) Retryer {
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = backoff.DefaultInitialInterval
	}
	if cfg.MaxElapsedTime <= 0 {
		cfg.MaxElapsedTime = backoff.DefaultMaxElapsedTime
	}
	if cfg.Multiplier <= 0 {
		cfg.Multiplier = backoff.DefaultMultiplier
	}

	return &exponentialBackoff{cfg: cfg}
}

func (r *exponentialBackoff) Retry(ctx context.Context, name string, operation func() error, onGiveUp func(err error) error) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = r.cfg.InitialInterval
	eb.MaxElapsedTime = r.cfg.MaxElapsedTime
	eb.Multiplier = r.cfg.Multiplier

	notify := func(err error, next time.Duration) {
		xlog.Warn(ctx, "[RETRY]", xlog.String("operation", name), xlog.Duration("next_attempt_in", next), xlog.Err(err))
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(eb, r.cfg.MaxRetries), ctx)
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		if onGiveUp == nil {
			return err
		}
		return onGiveUp(err)
	}

	return nil
}

// StopRetryWithErr marks err as permanent, call it inside operation.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}
