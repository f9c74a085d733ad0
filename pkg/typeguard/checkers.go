package typeguard

import "reflect"

// TypeChecker validates membership of a single Go type: the value's dynamic
// type must be the annotated type or a subtype of it (an implementation,
// for interface annotations). It never consults the namespace.
type TypeChecker struct {
	typ reflect.Type
}

// NewTypeChecker builds a checker for one reflect.Type. A nil type is a
// specification error and panics.
func NewTypeChecker(t reflect.Type) *TypeChecker {
	if t == nil {
		panic(NewSpecificationError("NewTypeChecker requires a type, got nil"))
	}
	return &TypeChecker{typ: t}
}

func (c *TypeChecker) Check(value any, ns *Namespace) bool {
	return Subtype(reflect.TypeOf(value), c.typ)
}

func (c *TypeChecker) String() string { return c.typ.String() }

func isTypeAnnotation(annotation any) bool {
	_, ok := annotation.(reflect.Type)
	return ok
}

func newTypeChecker(annotation any) Checker {
	return NewTypeChecker(annotation.(reflect.Type))
}

// TypeVarChecker validates an occurrence of a type variable: the observed
// value's dynamic type must be compatible with the variable in the current
// namespace. Checking may bind the variable as a side effect (the first
// occurrence always does).
type TypeVarChecker struct {
	tv *TypeVar
}

// NewTypeVarChecker builds a checker for one type variable.
func NewTypeVarChecker(tv *TypeVar) *TypeVarChecker {
	if tv == nil {
		panic(NewSpecificationError("NewTypeVarChecker requires a type variable, got nil"))
	}
	return &TypeVarChecker{tv: tv}
}

func (c *TypeVarChecker) Check(value any, ns *Namespace) bool {
	observed := reflect.TypeOf(value)
	if observed == nil {
		return false
	}
	return ns.IsCompatible(c.tv, observed)
}

func (c *TypeVarChecker) String() string { return c.tv.String() }

func isTypeVarAnnotation(annotation any) bool {
	_, ok := annotation.(*TypeVar)
	return ok
}

func newTypeVarChecker(annotation any) Checker {
	return NewTypeVarChecker(annotation.(*TypeVar))
}

// OptionalChecker wraps another checker and additionally accepts the
// NoValue sentinel and nil: a parameter not supplied, or supplied as
// explicitly absent, is acceptable regardless of the declared type.
type OptionalChecker struct {
	inner Checker
}

// Optional wraps an annotation (or an already-built checker, which passes
// through the registry untouched). The inner annotation is resolved eagerly;
// an unrecognized one is a specification error and panics.
func Optional(inner any) *OptionalChecker {
	c := Create(inner)
	if c == nil {
		panic(NewSpecificationError("Optional: no checker registered for annotation %v", inner))
	}
	return &OptionalChecker{inner: c}
}

func (c *OptionalChecker) Check(value any, ns *Namespace) bool {
	if value == NoValue || value == nil {
		return true
	}
	return c.inner.Check(value, ns)
}
