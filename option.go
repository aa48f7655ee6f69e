package paystack

import (
	"time"

	"github.com/arttitude360/paystack-go/logger"
	"github.com/arttitude360/paystack-go/metrics"
)

type Option func(*Bridge)

func WithLogger(l logger.Logger) Option {
	return func(b *Bridge) {
		b.log = l
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(b *Bridge) {
		b.rec = r
	}
}

// WithTimeout bounds how long a submitted charge may stay open. The default
// is no bound.
func WithTimeout(t time.Duration) Option {
	return func(b *Bridge) {
		b.timeout = t
	}
}
