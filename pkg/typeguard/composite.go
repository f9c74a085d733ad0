package typeguard

import "reflect"

// The composite checkers resolve their element annotations eagerly through
// the registry at construction, like Optional does, and thread the caller's
// namespace through every nested check so type-variable bindings flow
// between elements.

func mustCreate(what string, annotation any) Checker {
	c := Create(annotation)
	if c == nil {
		panic(NewSpecificationError("%s: no checker registered for annotation %v", what, annotation))
	}
	return c
}

// SliceChecker validates homogeneous slices and arrays: every element must
// conform to the element annotation.
type SliceChecker struct {
	elem Checker
}

// Slice builds a checker for slice/array values with elements conforming to
// elem.
func Slice(elem any) *SliceChecker {
	return &SliceChecker{elem: mustCreate("Slice", elem)}
}

func (c *SliceChecker) Check(value any, ns *Namespace) bool {
	v := reflect.ValueOf(value)
	if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		if !c.elem.Check(v.Index(i).Interface(), ns) {
			return false
		}
	}
	return true
}

// MapChecker validates maps: every key must conform to the key annotation
// and every value to the value annotation.
type MapChecker struct {
	key Checker
	val Checker
}

// MapOf builds a checker for map values.
func MapOf(key, val any) *MapChecker {
	return &MapChecker{
		key: mustCreate("MapOf", key),
		val: mustCreate("MapOf", val),
	}
}

func (c *MapChecker) Check(value any, ns *Namespace) bool {
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.Kind() != reflect.Map {
		return false
	}
	iter := v.MapRange()
	for iter.Next() {
		if !c.key.Check(iter.Key().Interface(), ns) {
			return false
		}
		if !c.val.Check(iter.Value().Interface(), ns) {
			return false
		}
	}
	return true
}

// TupleChecker validates fixed-length sequences: the value must be a slice
// or array of exactly the declared length, with each position conforming to
// its own annotation.
type TupleChecker struct {
	elems []Checker
}

// Tuple builds a checker for positionally typed sequences.
func Tuple(elems ...any) *TupleChecker {
	checkers := make([]Checker, len(elems))
	for i, e := range elems {
		checkers[i] = mustCreate("Tuple", e)
	}
	return &TupleChecker{elems: checkers}
}

func (c *TupleChecker) Check(value any, ns *Namespace) bool {
	v := reflect.ValueOf(value)
	if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
		return false
	}
	if v.Len() != len(c.elems) {
		return false
	}
	for i, elem := range c.elems {
		if !elem.Check(v.Index(i).Interface(), ns) {
			return false
		}
	}
	return true
}

// UnionChecker accepts a value any of its member checkers accepts. Members
// are tried in declaration order; bindings established by the first
// accepting member stick in the namespace.
type UnionChecker struct {
	members []Checker
}

// Union builds a checker accepting any of the member annotations.
func Union(members ...any) *UnionChecker {
	checkers := make([]Checker, len(members))
	for i, m := range members {
		checkers[i] = mustCreate("Union", m)
	}
	return &UnionChecker{members: checkers}
}

func (c *UnionChecker) Check(value any, ns *Namespace) bool {
	for _, m := range c.members {
		if m.Check(value, ns) {
			return true
		}
	}
	return false
}
