package typeguard

import "reflect"

// TypeVar is a symbolic placeholder standing for an as-yet-unknown concrete
// type within a generic type or function. Type variables are compared by
// identity (pointer equality), never by name; the name exists only for
// diagnostics.
//
// All intrinsic properties are fixed at creation: an optional upper bound
// that every binding must be a subtype of, and a variance flag. A variable
// is invariant unless created with Covariant or Contravariant.
type TypeVar struct {
	name          string
	bound         reflect.Type
	covariant     bool
	contravariant bool
}

// TypeVarOption configures a TypeVar at creation.
type TypeVarOption func(*TypeVar)

// WithBound sets the upper bound: every type bound to the variable must be a
// subtype of t.
func WithBound(t reflect.Type) TypeVarOption {
	return func(tv *TypeVar) { tv.bound = t }
}

// Covariant marks the variable as accepting subtypes of its binding on
// repeat occurrences.
func Covariant() TypeVarOption {
	return func(tv *TypeVar) { tv.covariant = true }
}

// Contravariant marks the variable as accepting supertypes of its binding on
// repeat occurrences.
func Contravariant() TypeVarOption {
	return func(tv *TypeVar) { tv.contravariant = true }
}

// NewTypeVar creates a type variable. Requesting both Covariant and
// Contravariant is a specification error and panics.
func NewTypeVar(name string, opts ...TypeVarOption) *TypeVar {
	tv := &TypeVar{name: name}
	for _, opt := range opts {
		opt(tv)
	}
	if tv.covariant && tv.contravariant {
		panic(NewSpecificationError("type variable %s cannot be both covariant and contravariant", name))
	}
	return tv
}

// Name returns the diagnostic name of the variable.
func (tv *TypeVar) Name() string { return tv.name }

// Bound returns the upper bound, or nil if the variable is unbounded.
func (tv *TypeVar) Bound() reflect.Type { return tv.bound }

// IsCovariant reports whether the variable was created covariant.
func (tv *TypeVar) IsCovariant() bool { return tv.covariant }

// IsContravariant reports whether the variable was created contravariant.
func (tv *TypeVar) IsContravariant() bool { return tv.contravariant }

func (tv *TypeVar) String() string {
	switch {
	case tv.covariant:
		return "+" + tv.name
	case tv.contravariant:
		return "-" + tv.name
	default:
		return tv.name
	}
}

// Generic is implemented by runtime representations of generic types. An
// instance whose dynamic type implements Generic carries persistent bindings
// for its declared type parameters (see Namespace).
type Generic interface {
	// TypeParameters returns the type variables declared by the generic type
	// of this instance.
	TypeParameters() []*TypeVar
}
