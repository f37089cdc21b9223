package health

import "context"

// StorePinger checks the Redis store availability.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// InferenceChecker checks the inference provider availability.
type InferenceChecker interface {
	HealthCheck(ctx context.Context) error
}
