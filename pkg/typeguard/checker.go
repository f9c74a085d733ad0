// Package typeguard implements runtime conformance checking of Go values
// against declared type annotations, including parametric annotations whose
// type variables are bound per call or per instance.
//
// An annotation is resolved to a Checker through an ordered, extensible
// registry of (predicate, factory) entries. A Checker is invoked with the
// observed value and a per-call Namespace; the namespace carries
// type-variable bindings so that a binding established while checking one
// argument constrains the checks of later arguments and the return value.
//
// Check failure is a boolean, never an error: errors are reserved for
// misuse of the framework itself (see SpecificationError).
package typeguard

// Checker validates values against one annotation shape.
type Checker interface {
	// Check reports whether value conforms. It must be a pure predicate with
	// respect to value, but may establish type-variable bindings in ns.
	Check(value any, ns *Namespace) bool
}

// noValue is the type of the NoValue sentinel.
type noValue struct{}

func (noValue) String() string { return "<no value>" }

// NoValue marks a parameter that was not supplied at all, as opposed to one
// supplied as nil. Optional checkers accept it unconditionally.
var NoValue any = noValue{}
