package result

import (
	"reflect"
)

// IsNil reports whether i is nil or holds a nil pointer, map, slice, channel,
// function or interface.
func IsNil(i any) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// isAbsent reports whether err is the zero value of E. For an interface E only
// a nil interface qualifies; whatever it holds, even a typed nil pointer or a
// zero struct, is a failure.
func isAbsent[E error](err E) bool {
	return reflect.ValueOf(&err).Elem().IsZero()
}

// GetErrors splits an errors.Join style error into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
