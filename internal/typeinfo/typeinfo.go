// Package typeinfo answers layout questions about element types.
package typeinfo

import "reflect"

// SizeOf returns the size of T in bytes. Zero for zero-size types.
func SizeOf[T any]() uintptr {
	return reflect.TypeFor[T]().Size()
}

// AlignOf returns the required alignment of T in bytes.
func AlignOf[T any]() uintptr {
	return uintptr(reflect.TypeFor[T]().Align())
}

// IsZeroSize reports whether values of T occupy no memory.
func IsZeroSize[T any]() bool {
	return SizeOf[T]() == 0
}

// HasPointers reports whether T contains any pointer the garbage collector
// would need to trace. Types for which this is false may be stored in memory
// the collector does not scan, such as anonymous mappings.
func HasPointers[T any]() bool {
	return hasPointers(reflect.TypeFor[T]())
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, slices, maps, channels, funcs, strings, interfaces and
		// unsafe pointers all carry references.
		return true
	}
}
