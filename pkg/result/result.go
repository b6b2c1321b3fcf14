package result

// Result holds either a successful value of type V or a failure reason of
// type E. The variant is fixed when the Result is built and never changes.
type Result[V any, E error] struct {
	value     V
	err       E
	isSuccess bool
}

// Of is a Result whose failure reason is a plain error.
type Of[V any] = Result[V, error]

func Success[V any, E error](v V) Result[V, E] {
	return Result[V, E]{
		value:     v,
		isSuccess: true,
	}
}

// Failure always builds a failed Result, even when err is the zero value of E.
func Failure[V any, E error](err E) Result[V, E] {
	return Result[V, E]{
		err:       err,
		isSuccess: false,
	}
}

// From wraps an already evaluated (value, error) pair. The pair is a
// success when err is the zero value of E: a nil interface, a nil pointer or a
// zero value-type error. A non-nil error interface is always a failure.
func From[V any, E error](v V, err E) Result[V, E] {
	if isAbsent(err) {
		return Success[V, E](v)
	}
	return Failure[V](err)
}

// Try invokes compute exactly once and captures what it returns. Panics are
// not recovered.
func Try[V any, E error](compute func() (V, E)) Result[V, E] {
	v, err := compute()
	return From(v, err)
}

// Value returns the contained value and true for a success, or the zero
// value and false for a failure.
func (r Result[V, E]) Value() (V, bool) {
	if r.isSuccess {
		return r.value, true
	}
	var zero V
	return zero, false
}

// Err returns the contained error and true for a failure.
func (r Result[V, E]) Err() (E, bool) {
	if r.isSuccess {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Unwrap hands the Result back to ordinary Go error handling. A failure
// returns exactly the error it was built with. A failure built from a nil
// error therefore unwraps to a nil error; check IsFailure when that matters.
func (r Result[V, E]) Unwrap() (V, error) {
	if r.isSuccess {
		return r.value, nil
	}
	var zero V
	return zero, error(r.err)
}

// Must returns the value or panics with the contained error.
func (r Result[V, E]) Must() V {
	if !r.isSuccess {
		panic(error(r.err))
	}
	return r.value
}

func (r Result[V, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[V, E]) IsFailure() bool {
	return !r.isSuccess
}

// OrElse returns the value of a success. For a failure it calls fallback and
// returns its result; fallback is not called for a success.
func (r Result[V, E]) OrElse(fallback func() V) V {
	if r.isSuccess {
		return r.value
	}
	return fallback()
}

// Recover leaves a success untouched. A failure is handed to onFailure and
// whatever it returns replaces the Result.
func (r Result[V, E]) Recover(onFailure func(err E) Result[V, E]) Result[V, E] {
	if r.isSuccess {
		return r
	}
	return onFailure(r.err)
}
