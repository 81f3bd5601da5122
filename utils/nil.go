package utils //nolint:revive // utils is an appropriate package name for utility functions

import "reflect"

// IsNilish returns true if the value is a literal nil, or a typed nil of a
// kind that can hold one (pointer, map, slice, channel, func, interface).
// Tuples treat such values as absent and render them as "".
func IsNilish(val any) bool {
	if val == nil {
		return true
	}

	switch valOf := reflect.ValueOf(val); valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	default:
		return false
	}
}
