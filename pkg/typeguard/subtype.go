package typeguard

import "reflect"

// Subtype reports whether sub conforms to super: they are the same type,
// super is an interface sub implements, or sub is assignable to super.
// A nil on either side is never a subtype of anything.
func Subtype(sub, super reflect.Type) bool {
	if sub == nil || super == nil {
		return false
	}
	if sub == super {
		return true
	}
	if super.Kind() == reflect.Interface {
		return sub.Implements(super)
	}
	return sub.AssignableTo(super)
}
