package chain

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of every error a chain produces itself. Errors returned
// by step functions are passed along untouched and are not of this class.
var Error = errs.Class("chain")

var (
	ErrCancelled      = errors.New("chain cancelled")
	ErrIterationLimit = errors.New("iteration limit reached")
)

// cancelled matches both ErrCancelled and the context error via errors.Is.
func cancelled(ctxErr error) error {
	return Error.Wrap(fmt.Errorf("%w: %w", ErrCancelled, ctxErr))
}

func iterationLimit(limit int) error {
	return Error.Wrap(fmt.Errorf("%w: %d", ErrIterationLimit, limit))
}

func invalid(msg string) error {
	return Error.New("%s", msg)
}
