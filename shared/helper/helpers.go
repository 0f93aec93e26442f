package helper

import (
	"reflect"
)

// GetTypedValueOf2 safely asserts the result of a comma-ok getter to the expected type T.
// ok is false if the getter misses or the stored value is not a T.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// IsNil reports whether v is a nil interface or a nil pointer, map, slice, func or chan.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// AnyNil reports whether any of vs is nil in the sense of IsNil.
func AnyNil(vs ...any) bool {
	for _, v := range vs {
		if IsNil(v) {
			return true
		}
	}
	return false
}
