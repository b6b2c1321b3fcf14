package logging

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

func Int[S ~string, T constraints.Signed](s S, v T) Field {
	return zap.Int64(string(s), int64(v))
}

func Error(err error) Field {
	return zap.Error(err)
}

func String[U, V ~string](s U, v V) Field {
	return zap.String(string(s), string(v))
}

// Stringer logs the String rendering of v, evaluated only when the entry is
// written.
func Stringer[S ~string](s S, v fmt.Stringer) Field {
	return zap.Stringer(string(s), v)
}

func UUID[S ~string](s S, id uuid.UUID) Field {
	return zap.Stringer(string(s), id)
}
