package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slices"
)

type ProcessStarter func() error

type ProcessStopper func(ctx context.Context) error

type ProcessStartStopper interface {
	Start() ProcessStarter
	Stop() ProcessStopper
}

// StartProcessAtBackground runs every starter in its own goroutine. A starter
// that returns is reported on errs when errs is not nil.
func StartProcessAtBackground(errs chan<- error, ps ...ProcessStarter) {
	for _, p := range ps {
		if p == nil {
			continue
		}
		go func(start ProcessStarter) {
			err := start()
			if errs != nil {
				errs <- err
			}
		}(p)
	}
}

// StopProcessAtBackground blocks until SIGINT, SIGTERM or SIGUSR1 arrives, or a
// value is received on errs, then stops every process.
func StopProcessAtBackground(duration time.Duration, errs <-chan error, ps ...ProcessStopper) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1, os.Interrupt)
	defer stop()

	select {
	case <-ctx.Done():
	case <-errs:
	}

	StopProcess(duration, ps...)
}

// StopProcess calls the stoppers in reverse order, each one with its own timeout.
func StopProcess(duration time.Duration, ps ...ProcessStopper) {
	reversed := slices.Clone(ps)
	slices.Reverse(reversed)

	for _, p := range reversed {
		if p == nil {
			continue
		}
		func() {
			ctx, cancel := context.WithTimeout(context.Background(), duration)
			defer cancel()
			_ = p(ctx)
		}()
	}
}
