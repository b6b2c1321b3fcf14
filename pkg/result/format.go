package result

import "fmt"

// String renders a success as Result(<value>) and a failure as
// Result(error: <error>).
func (r Result[V, E]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Result(%v)", r.value)
	}
	return fmt.Sprintf("Result(error: %v)", r.err)
}

// GoString makes %#v print the same text as String.
func (r Result[V, E]) GoString() string {
	return r.String()
}
