package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/karnaval/go-costume-catalog/internal/common/retry"

	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"

	"github.com/stretchr/testify/assert"
)

func init() {
	xlog.InitForTest()
}

func fastConfig() retry.Config {
	return retry.Config{
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
		MaxElapsedTime:  time.Second,
	}
}

func TestRetry(t *testing.T) {
	errPing := errors.New("connection refused")

	tests := []struct {
		name       string
		failures   int
		permanent  bool
		wantCalls  int
		wantErr    bool
		wantGaveUp bool
	}{
		{
			name:      "success on first call",
			failures:  0,
			wantCalls: 1,
		},
		{
			name:      "success after two failures",
			failures:  2,
			wantCalls: 3,
		},
		{
			name:       "retries exhausted",
			failures:   10,
			wantCalls:  4,
			wantErr:    true,
			wantGaveUp: true,
		},
		{
			name:       "permanent error stops at once",
			failures:   10,
			permanent:  true,
			wantCalls:  1,
			wantErr:    true,
			wantGaveUp: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := retry.NewExponentialBackOff(fastConfig())

			calls := 0
			gaveUp := false
			err := r.Retry(context.Background(), "ping", func() error {
				calls++
				if calls <= tt.failures {
					if tt.permanent {
						return r.StopRetryWithErr(errPing)
					}
					return errPing
				}
				return nil
			}, func(err error) error {
				gaveUp = true
				return err
			})

			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantCalls, calls)
			assert.Equal(t, tt.wantGaveUp, gaveUp)
			if tt.wantErr {
				assert.ErrorIs(t, err, errPing)
			}
		})
	}
}

func TestRetry_NilGiveUp(t *testing.T) {
	r := retry.NewExponentialBackOff(retry.Config{MaxRetries: 1, InitialInterval: time.Millisecond})
	err := r.Retry(context.Background(), "ping", func() error { return assert.AnError }, nil)
	assert.ErrorIs(t, err, assert.AnError)
}
