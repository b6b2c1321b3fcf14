package result

// BindLeft is the r >>- f operator: FlatMap with the Result on the left.
func BindLeft[V, U any, E error](r Result[V, E], f func(V) Result[U, E]) Result[U, E] {
	return FlatMap(r, f)
}

// BindRight is the f -<< r operator: FlatMap with the function on the left.
func BindRight[V, U any, E error](f func(V) Result[U, E], r Result[V, E]) Result[U, E] {
	return FlatMap(r, f)
}

// Fmap is the f <^> r operator.
func Fmap[V, U any, E error](f func(V) U, r Result[V, E]) Result[U, E] {
	return Map(r, f)
}

// ApplyOp is the fn <*> r operator. Chains nest to the left:
// pure(f) <*> a <*> b is ApplyOp(ApplyOp(Pure(f), a), b).
func ApplyOp[V, U any, E error](fn Result[func(V) U, E], r Result[V, E]) Result[U, E] {
	return Apply(r, fn)
}

// Coalesce is the r ?? fallback operator. fallback runs only for a failure.
func Coalesce[V any, E error](r Result[V, E], fallback func() V) V {
	return r.OrElse(fallback)
}

// Pure wraps v as a success.
func Pure[V any, E error](v V) Result[V, E] {
	return Success[V, E](v)
}

// TryLift turns a fallible single-argument function into one returning a
// Result. Each call of the returned function calls f exactly once.
func TryLift[A, B any, E error](f func(A) (B, E)) func(A) Result[B, E] {
	return func(a A) Result[B, E] {
		b, err := f(a)
		return From(b, err)
	}
}

func Curry2[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}

// Lift2 applies a two-argument function across two Results, short-circuiting
// on the first failure left to right. It is f <^> a <*> b.
func Lift2[A, B, C any, E error](f func(A, B) C, a Result[A, E], b Result[B, E]) Result[C, E] {
	return ApplyOp(Fmap(Curry2(f), a), b)
}

// Lift3 is f <^> a <*> b <*> c.
func Lift3[A, B, C, D any, E error](f func(A, B, C) D,
	a Result[A, E], b Result[B, E], c Result[C, E]) Result[D, E] {
	return ApplyOp(ApplyOp(Fmap(Curry3(f), a), b), c)
}
