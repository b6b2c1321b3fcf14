package chain

import "context"

type OptionKey string

const (
	IterationOptionKey OptionKey = "iteration_options"

	// DefaultMaxIterations bounds RepeatUntil and While when the context
	// carries no IterationOptions.
	DefaultMaxIterations = 1000
)

type MaxLimitOption struct {
	Value int
}

type IterationOptions struct {
	MaxCount MaxLimitOption
}

// WithMaxIterations returns a copy of ctx that limits every loop of a chain
// to maxIterations runs of its step.
func WithMaxIterations(ctx context.Context, maxIterations int) context.Context {
	return context.WithValue(ctx, IterationOptionKey, IterationOptions{MaxLimitOption{Value: maxIterations}})
}

// GetMaxIterations returns the loop limit stored in ctx, or
// defaultMaxIterations when there is none or it is not positive.
func GetMaxIterations(ctx context.Context, defaultMaxIterations int) int {
	options, ok := ctx.Value(IterationOptionKey).(IterationOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxIterations
}
