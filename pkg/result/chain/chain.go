package chain

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ib-77/resultk/internal/logging"
	"github.com/ib-77/resultk/pkg/result"
)

const (
	fieldChainID = "chain_id"
	fieldStep    = "step"
	fieldOp      = "op"
	fieldResult  = "result"
)

// Chain wraps a result.Of with a context to enable fluent chaining.
// Chains are values; every step returns a new Chain.
type Chain[V any] struct {
	ctx  context.Context
	id   uuid.UUID
	step int
	res  result.Of[V]
}

// Start creates a new chain from a result. A nil ctx is replaced by
// context.Background.
func Start[V any](ctx context.Context, r result.Of[V]) Chain[V] {
	if ctx == nil {
		ctx = context.Background()
	}

	c := Chain[V]{ctx: ctx, id: uuid.New(), res: r}
	c.logger().Debug("chain started", logging.Stringer(fieldResult, r))
	return c
}

// FromValue creates a new chain from a successful value.
func FromValue[V any](ctx context.Context, v V) Chain[V] {
	return Start(ctx, result.Success[V, error](v))
}

// FromTry creates a new chain from a call returning (V, error). The call is
// made exactly once.
func FromTry[V any](ctx context.Context, try func(ctx context.Context) (V, error)) Chain[V] {
	if ctx == nil {
		ctx = context.Background()
	}
	return Start(ctx, result.Try(func() (V, error) { return try(ctx) }))
}

func (c Chain[V]) Result() result.Of[V] {
	return c.res
}

func (c Chain[V]) ID() uuid.UUID {
	return c.id
}

func (c Chain[V]) Context() context.Context {
	return c.ctx
}

// Steps is the number of steps applied so far, skipped ones included.
func (c Chain[V]) Steps() int {
	return c.step
}

func (c Chain[V]) logger() *logging.Logger {
	return logging.FromContext(c.ctx).With(logging.UUID(fieldChainID, c.id))
}

func with[V, U any](c Chain[V], r result.Of[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, id: c.id, step: c.step + 1, res: r}
}

// step runs onSuccess when c succeeded and its context is still live. A
// failed chain keeps its error, a done context fails the chain.
func step[In, Out any](c Chain[In], op string,
	onSuccess func(ctx context.Context, v In) result.Of[Out]) Chain[Out] {

	log := c.logger().With(logging.String(fieldOp, op), logging.Int(fieldStep, c.step+1))

	v, ok := c.res.Value()
	if !ok {
		err, _ := c.res.Err()
		log.Debug("step skipped", logging.Error(err))
		return with(c, result.Failure[Out](err))
	}

	if ctxErr := c.ctx.Err(); ctxErr != nil {
		err := cancelled(ctxErr)
		log.Warn("chain cancelled", logging.Error(err))
		return with(c, result.Failure[Out](err))
	}

	out := onSuccess(c.ctx, v)
	log.Debug("step done", logging.Stringer(fieldResult, out))
	return with(c, out)
}

func (c Chain[V]) fail(op string, err error) Chain[V] {
	c.logger().Warn("chain failed",
		logging.String(fieldOp, op),
		logging.Int(fieldStep, c.step+1),
		logging.Error(err))
	return with(c, result.Failure[V](err))
}

// Then composes functions that already return result.Of[V].
func (c Chain[V]) Then(onSuccess func(ctx context.Context, v V) result.Of[V]) Chain[V] {
	return step(c, "then", onSuccess)
}

// ThenTry composes functions that return (V, error), like repository calls.
func (c Chain[V]) ThenTry(try func(ctx context.Context, v V) (V, error)) Chain[V] {
	return step(c, "then_try", func(ctx context.Context, v V) result.Of[V] {
		out, err := try(ctx, v)
		return result.From(out, err)
	})
}

// Map transforms the successful value to a new value.
func (c Chain[V]) Map(onSuccess func(ctx context.Context, v V) V) Chain[V] {
	return step(c, "map", func(ctx context.Context, v V) result.Of[V] {
		return result.Success[V, error](onSuccess(ctx, v))
	})
}

// Validate fails the chain with msg when validate rejects the value.
func (c Chain[V]) Validate(validate func(ctx context.Context, v V) (valid bool, msg string)) Chain[V] {
	return step(c, "validate", func(ctx context.Context, v V) result.Of[V] {
		if valid, msg := validate(ctx, v); !valid {
			return result.Failure[V](invalid(msg))
		}
		return result.Success[V, error](v)
	})
}

// ValidateAll runs every validator and fails with all rejections joined.
func (c Chain[V]) ValidateAll(validators ...func(ctx context.Context, v V) (valid bool, msg string)) Chain[V] {
	return step(c, "validate_all", func(ctx context.Context, v V) result.Of[V] {
		var err error
		for _, validate := range validators {
			if valid, msg := validate(ctx, v); !valid {
				err = errors.Join(append(result.GetErrors(err), invalid(msg))...)
			}
		}

		if err != nil {
			return result.Failure[V](err)
		}
		return result.Success[V, error](v)
	})
}

// Recover hands a failure to onFailure and continues with what it returns.
// It runs even when the context is done, so cancellations can be handled.
func (c Chain[V]) Recover(onFailure func(ctx context.Context, err error) result.Of[V]) Chain[V] {
	err, failed := c.res.Err()
	if !failed {
		return with(c, c.res)
	}

	out := onFailure(c.ctx, err)
	c.logger().Debug("step done",
		logging.String(fieldOp, "recover"),
		logging.Int(fieldStep, c.step+1),
		logging.Stringer(fieldResult, out))
	return with(c, out)
}

// Ensure triggers side effects for success or failure without changing the
// result. Nil callbacks are skipped.
func (c Chain[V]) Ensure(onSuccess func(ctx context.Context, v V),
	onFailure func(ctx context.Context, err error)) Chain[V] {

	if v, ok := c.res.Value(); ok {
		if onSuccess != nil {
			onSuccess(c.ctx, v)
		}
		return c
	}

	if onFailure != nil {
		err, _ := c.res.Err()
		onFailure(c.ctx, err)
	}
	return c
}

// RepeatUntil applies onSuccess at least once and keeps applying it until
// done accepts the value, the chain fails, or the iteration limit is hit.
func (c Chain[V]) RepeatUntil(onSuccess func(ctx context.Context, v V) result.Of[V],
	done func(ctx context.Context, v V) bool) Chain[V] {

	limit := GetMaxIterations(c.ctx, DefaultMaxIterations)

	for i := 0; ; i++ {
		if i >= limit {
			return c.fail("repeat_until", iterationLimit(limit))
		}

		c = step(c, "repeat_until", onSuccess)

		v, ok := c.res.Value()
		if !ok || done(c.ctx, v) {
			return c
		}
	}
}

// While applies onSuccess as long as cond holds for the current value. cond
// is checked before every run, so onSuccess may never be called.
func (c Chain[V]) While(onSuccess func(ctx context.Context, v V) result.Of[V],
	cond func(ctx context.Context, v V) bool) Chain[V] {

	limit := GetMaxIterations(c.ctx, DefaultMaxIterations)

	for i := 0; ; i++ {
		v, ok := c.res.Value()
		if !ok || !cond(c.ctx, v) {
			return c
		}

		if i >= limit {
			return c.fail("while", iterationLimit(limit))
		}

		c = step(c, "while", onSuccess)
	}
}

// Or returns the first successful chain among c and alternatives, or the
// first failed one when none succeeded.
func (c Chain[V]) Or(alternatives ...Chain[V]) Chain[V] {
	for _, ch := range append([]Chain[V]{c}, alternatives...) {
		if ch.res.IsSuccess() {
			return ch
		}
	}
	return c
}

// And returns the first failed chain among c and required, or the last one
// when all succeeded.
func (c Chain[V]) And(required ...Chain[V]) Chain[V] {
	last := c
	for _, ch := range append([]Chain[V]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// OrElse returns the value, or fallback's value when the chain failed.
func (c Chain[V]) OrElse(fallback func() V) V {
	return c.res.OrElse(fallback)
}

// Finally collapses the chain to a final value.
func (c Chain[V]) Finally(onSuccess func(ctx context.Context, v V) V,
	onFailure func(ctx context.Context, err error) V) V {
	return Fold(c, onSuccess, onFailure)
}

// Switch chains a function that moves the value to another type.
func Switch[In, Out any](c Chain[In], onSuccess func(ctx context.Context, v In) result.Of[Out]) Chain[Out] {
	return step(c, "switch", onSuccess)
}

// Convert chains a pure transformation to another type.
func Convert[In, Out any](c Chain[In], onSuccess func(ctx context.Context, v In) Out) Chain[Out] {
	return step(c, "convert", func(ctx context.Context, v In) result.Of[Out] {
		return result.Success[Out, error](onSuccess(ctx, v))
	})
}

// Try chains a function returning (Out, error).
func Try[In, Out any](c Chain[In], try func(ctx context.Context, v In) (Out, error)) Chain[Out] {
	return step(c, "try", func(ctx context.Context, v In) result.Of[Out] {
		out, err := try(ctx, v)
		return result.From(out, err)
	})
}

// Fold collapses the chain into a value of another type.
func Fold[V, U any](c Chain[V], onSuccess func(ctx context.Context, v V) U,
	onFailure func(ctx context.Context, err error) U) U {

	return result.Fold(c.res,
		func(v V) U { return onSuccess(c.ctx, v) },
		func(err error) U { return onFailure(c.ctx, err) })
}
