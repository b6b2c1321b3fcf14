// Package chain provides a fluent Chain[V] over result.Of[V] for building
// synchronous railway-oriented flows that carry a context.
//
// Key operations:
// - Start/FromValue/FromTry: begin a chain
// - Then/ThenTry/Map/Validate/ValidateAll: same-type steps
// - Switch/Convert/Try: steps that change the value type
// - Recover/Ensure: handle or observe failures
// - RepeatUntil/While: bounded loops, see WithMaxIterations
// - Or/And: pick among several chains
// - Finally/Fold/OrElse: collapse the chain into a value
//
// A failed chain never calls step functions and keeps its error unchanged.
// A done context fails the chain before the next step with an error that
// matches both ErrCancelled and the context error.
//
// Chains log nothing unless the context carries a zap logger, see
// WithLogger. Steps are logged at debug level with the chain id.
package chain
