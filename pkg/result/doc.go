// Package result provides Result[V, E], a value that is either a success
// holding V or a failure holding the error E, and the combinators that chain
// fallible computations over it without checking errors at every step.
//
// Highlights:
// - Success/Failure/Pure: construct a Result
// - From/Try/TryLift: capture Go's (value, error) returns
// - Value/Err/Unwrap/Must: read a Result back
// - Map/FlatMap/Apply/Recover/MapErr: transform without branching
// - Fold/OrElse/Coalesce: reduce to a plain value
// - Sequence/Lift2/Lift3: combine several Results
//
// A failure short-circuits: every combinator returns it with the very same
// error value and never calls the supplied function.
//
// Go has no user-defined operators, so the classic operators are named
// functions. Their intended precedence, for reading nested calls:
//
//	r >>- f      BindLeft(r, f)    monadic tier, left associative
//	f -<< r      BindRight(f, r)   monadic tier, right associative
//	f <^> r      Fmap(f, r)        applicative tier, left associative
//	fn <*> r     ApplyOp(fn, r)    applicative tier, left associative
//	r ?? v       Coalesce(r, v)    fallback evaluated lazily
//
// The monadic tier binds looser than || and tighter than assignment. The
// applicative tier binds tighter than && and looser than coalescing, so
// f <^> a <*> b reads as ApplyOp(Fmap(f, a), b).
package result
