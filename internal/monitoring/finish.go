package monitoring

import (
	"time"

	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"
)

var messagePrefix = map[string]string{
	LayerRepository: "[REPOSITORY]",
	LayerService:    "[SERVICE]",
	LayerDelivery:   "[DELIVERY]",
	LayerUnknown:    "[-]",
}

type finishOptions struct {
	err        error
	xlogFields []xlog.Field
}

type FinishOption func(*finishOptions)

func WithFinishCheckError(err error) FinishOption {
	return func(o *finishOptions) {
		o.err = err
	}
}

func WithFinishXlogFields(fields ...xlog.Field) FinishOption {
	return func(o *finishOptions) {
		o.xlogFields = append(o.xlogFields, fields...)
	}
}

// Finish must be deferred through a closure, `defer func() { m.Finish(WithFinishCheckError(err)) }()`,
// so err is read after the method returned.
func (m *Monitor) Finish(opts ...FinishOption) {
	o := &finishOptions{}
	for _, opt := range opts {
		opt(o)
	}

	elapsed := time.Since(m.start)
	status := "success"
	if o.err != nil {
		status = "error"
	}
	observe(m.layer, m.segmentName, status, elapsed)

	fields := append(o.xlogFields,
		xlog.String("segment", m.segmentName),
		xlog.Duration("processDuration", elapsed),
		xlog.String("status", status),
	)

	switch {
	case o.err != nil:
		xlog.Warn(m.ctx, messagePrefix[m.layer], append(fields, xlog.Err(o.err))...)
	case m.layer == LayerDelivery || m.layer == LayerService:
		// repositories log only failures, the service above already logs the call
		xlog.Info(m.ctx, messagePrefix[m.layer], fields...)
	}

	if m.segment != nil {
		m.segment.End()
	}
}
