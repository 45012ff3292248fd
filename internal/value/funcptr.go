package value

import "reflect"

// funcPointer extracts the entry-point pointer of a func value so two
// BuiltinFunc references can be compared for identity, something Go's
// == does not permit directly on non-nil func values.
func funcPointer(f BuiltinFunc) uintptr {
	if f == nil {
		return 0
	}
	return reflect.ValueOf(f).Pointer()
}
