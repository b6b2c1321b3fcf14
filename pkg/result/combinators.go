package result

// Map applies onSuccess to the value of a success. A failure is passed
// through with its original error and onSuccess is not called.
func Map[V, U any, E error](input Result[V, E], onSuccess func(v V) U) Result[U, E] {
	if input.isSuccess {
		return Success[U, E](onSuccess(input.value))
	}
	return Failure[U](input.err)
}

// FlatMap applies onSuccess to the value of a success and returns its Result
// as is.
func FlatMap[V, U any, E error](input Result[V, E], onSuccess func(v V) Result[U, E]) Result[U, E] {
	if input.isSuccess {
		return onSuccess(input.value)
	}
	return Failure[U](input.err)
}

// Apply applies the function held by fn to the value held by input.
//
// fn is inspected first: when fn is a failure its error is returned even if
// input failed too. Only then is input's failure considered.
func Apply[V, U any, E error](input Result[V, E], fn Result[func(V) U, E]) Result[U, E] {
	return FlatMap(fn, func(f func(V) U) Result[U, E] {
		return Map(input, f)
	})
}

func Recover[V any, E error](input Result[V, E], onFailure func(err E) Result[V, E]) Result[V, E] {
	return input.Recover(onFailure)
}

// MapErr transforms the error of a failure, leaving a success untouched.
func MapErr[V any, E, F error](input Result[V, E], onFailure func(err E) F) Result[V, F] {
	if input.isSuccess {
		return Success[V, F](input.value)
	}
	return Failure[V](onFailure(input.err))
}

// Fold collapses input into a single value using the handler for its variant.
func Fold[V, U any, E error](input Result[V, E],
	onSuccess func(v V) U,
	onFailure func(err E) U) U {

	if input.isSuccess {
		return onSuccess(input.value)
	}
	return onFailure(input.err)
}

// Sequence collects the values of inputs in order. The first failure found
// left to right is returned unchanged and the remaining inputs are ignored.
func Sequence[V any, E error](inputs ...Result[V, E]) Result[[]V, E] {
	values := make([]V, 0, len(inputs))
	for _, in := range inputs {
		if !in.isSuccess {
			return Failure[[]V](in.err)
		}
		values = append(values, in.value)
	}
	return Success[[]V, E](values)
}
