// Package nilcheck reports whether a value of an arbitrary type parameter is nil.
package nilcheck

import "reflect"

// IsNil reports whether v is nil or a typed nil of a nilable kind.
// Values of non-nilable kinds (numbers, strings, structs, arrays) are never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
