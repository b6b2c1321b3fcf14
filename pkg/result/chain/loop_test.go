package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/resultk/pkg/result"
)

func increment(ctx context.Context, v int) result.Of[int] {
	return result.Success[int, error](v + 1)
}

func TestRepeatUntil(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := FromValue(ctx, 0).RepeatUntil(increment, func(ctx context.Context, v int) bool { return v >= 5 })
	v, err := c.Result().Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	// runs at least once
	c = FromValue(ctx, 10).RepeatUntil(increment, func(ctx context.Context, v int) bool { return true })
	assert.Equal(t, 11, c.Result().Must())
}

func TestRepeatUntil_StopsOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tooBig := errors.New("too big")

	calls := 0
	c := FromValue(ctx, 0).RepeatUntil(func(ctx context.Context, v int) result.Of[int] {
		calls++
		if v == 2 {
			return result.Failure[int](tooBig)
		}
		return result.Success[int, error](v + 1)
	}, func(ctx context.Context, v int) bool { return false })

	_, err := c.Result().Unwrap()
	assert.Same(t, tooBig, err)
	assert.Equal(t, 3, calls)
}

func TestRepeatUntil_IterationLimit(t *testing.T) {
	t.Parallel()
	ctx := WithMaxIterations(context.Background(), 3)

	calls := 0
	c := FromValue(ctx, 0).RepeatUntil(func(ctx context.Context, v int) result.Of[int] {
		calls++
		return increment(ctx, v)
	}, func(ctx context.Context, v int) bool { return false })

	_, err := c.Result().Unwrap()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIterationLimit)
	assert.True(t, Error.Has(err))
	assert.Equal(t, 3, calls)
}

func TestWhile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	below := func(n int) func(ctx context.Context, v int) bool {
		return func(ctx context.Context, v int) bool { return v < n }
	}

	assert.Equal(t, 4, FromValue(ctx, 0).While(increment, below(4)).Result().Must())

	// never runs when the condition is false up front
	calls := 0
	c := FromValue(ctx, 9).While(func(ctx context.Context, v int) result.Of[int] {
		calls++
		return increment(ctx, v)
	}, below(4))
	assert.Equal(t, 9, c.Result().Must())
	assert.Zero(t, calls)

	c = FromValue(WithMaxIterations(ctx, 2), 0).While(increment, below(100))
	_, err := c.Result().Unwrap()
	assert.ErrorIs(t, err, ErrIterationLimit)
}

func TestGetMaxIterations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, DefaultMaxIterations, GetMaxIterations(ctx, DefaultMaxIterations))
	assert.Equal(t, 7, GetMaxIterations(WithMaxIterations(ctx, 7), DefaultMaxIterations))
	assert.Equal(t, 5, GetMaxIterations(WithMaxIterations(ctx, 0), 5))
}

func TestCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	c := FromValue(ctx, 1).Map(func(ctx context.Context, v int) int { return v + 1 })
	cancel()

	called := false
	c = c.Map(func(ctx context.Context, v int) int {
		called = true
		return v
	})

	assert.False(t, called)
	_, err := c.Result().Unwrap()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCancelled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, Error.Has(err))

	// the cancellation error is then passed through unchanged
	next := Convert(c, func(ctx context.Context, v int) string { return "x" })
	_, nextErr := next.Result().Unwrap()
	assert.Same(t, err, nextErr)

	// and can be recovered
	recovered := c.Recover(func(ctx context.Context, err error) result.Of[int] {
		return result.Success[int, error](0)
	})
	assert.True(t, recovered.Result().IsSuccess())
}

func TestCancellation_FailureKeepsOriginalError(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	original := errors.New("original")
	c := Start(ctx, result.Failure[int](original)).Map(func(ctx context.Context, v int) int { return v })

	_, err := c.Result().Unwrap()
	assert.Same(t, original, err)
}
