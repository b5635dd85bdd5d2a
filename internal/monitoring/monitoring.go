package monitoring

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
)

const (
	LayerRepository = "repositories"
	LayerService    = "services"
	LayerDelivery   = "deliveries"
	LayerUnknown    = "unknown"
)

// Monitor times one call of a layer method. It logs the outcome, records the
// duration histogram and ends the New Relic segment when there is a transaction.
type Monitor struct {
	ctx         context.Context
	segmentName string
	layer       string
	start       time.Time
	segment     *newrelic.Segment
}

type initOptions struct {
	layer       string
	segmentName string
}

type InitOption func(*initOptions)

func WithLayer(layer string) InitOption {
	return func(o *initOptions) {
		o.layer = layer
	}
}

func WithSegmentName(segmentName string) InitOption {
	return func(o *initOptions) {
		o.segmentName = segmentName
	}
}

func New(ctx context.Context, opts ...InitOption) *Monitor {
	o := &initOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if o.segmentName == "" {
		// must stay the direct caller of runtime.Caller(1)
		pc, file, _, ok := runtime.Caller(1)
		if !ok {
			pc = 0
		}

		o.segmentName = "unknown"
		if fn := runtime.FuncForPC(pc); fn != nil {
			o.segmentName = getSegmentName(fn.Name())
		}

		if o.layer == "" {
			o.layer = layerFromFile(file)
		}
	}
	if o.layer == "" {
		o.layer = LayerUnknown
	}

	segment := newrelic.FromContext(ctx).StartSegment(o.segmentName)
	if segment != nil {
		segment.AddAttribute("layer", o.layer)
	}

	return &Monitor{
		ctx:         ctx,
		layer:       o.layer,
		start:       time.Now(),
		segmentName: o.segmentName,
		segment:     segment,
	}
}

func layerFromFile(file string) string {
	for _, layer := range []string{LayerRepository, LayerService, LayerDelivery} {
		if strings.Contains(file, "/"+layer+"/") {
			return layer
		}
	}
	return LayerUnknown
}
