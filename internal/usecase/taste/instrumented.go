package taste

import (
	"context"
	"time"

	"go.uber.org/zap"

	domtaste "github.com/gustohq/gusto/internal/domain/taste"
	"github.com/gustohq/gusto/internal/metrics"
)

// Instrumented wraps a Strategy with metrics and logging.
type Instrumented struct {
	inner  Strategy
	logger *zap.Logger
}

// NewInstrumented wraps a strategy with observability.
func NewInstrumented(inner Strategy, logger *zap.Logger) *Instrumented {
	return &Instrumented{inner: inner, logger: logger}
}

// Name delegates to the wrapped strategy.
func (i *Instrumented) Name() string { return i.inner.Name() }

// Infer delegates to the wrapped strategy and records the outcome.
func (i *Instrumented) Infer(ctx context.Context, text string) (domtaste.Vector, error) {
	start := time.Now()

	v, err := i.inner.Infer(ctx, text)

	duration := time.Since(start)
	metrics.InferenceDuration.WithLabelValues(i.inner.Name()).Observe(duration.Seconds())

	if err != nil {
		metrics.InferenceRequestsTotal.WithLabelValues(i.inner.Name(), "error").Inc()
		i.logger.Warn("Taste inference failed",
			zap.String("strategy", i.inner.Name()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return domtaste.Vector{}, err
	}

	metrics.InferenceRequestsTotal.WithLabelValues(i.inner.Name(), "ok").Inc()
	i.logger.Debug("Taste inference completed",
		zap.String("strategy", i.inner.Name()),
		zap.Duration("duration", duration),
	)
	return v, nil
}
