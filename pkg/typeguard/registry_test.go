package typeguard

import (
	"reflect"
	"testing"
)

// withCleanState snapshots the registry and enable flag and restores them
// when the test finishes.
func withCleanState(t *testing.T) {
	t.Helper()
	snap := TakeSnapshot()
	t.Cleanup(func() { RestoreSnapshot(snap) })
}

// tagChecker is a trivial checker distinguishable by tag, for dispatch-order
// tests.
type tagChecker struct{ tag string }

func (c *tagChecker) Check(value any, ns *Namespace) bool { return true }

func TestCreatePlainType(t *testing.T) {
	c := Create(intType)
	if c == nil {
		t.Fatalf("Create(reflect.Type) = nil")
	}
	if _, ok := c.(*TypeChecker); !ok {
		t.Errorf("Create(reflect.Type) = %T, want *TypeChecker", c)
	}
}

func TestCreateTypeVar(t *testing.T) {
	c := Create(NewTypeVar("T"))
	if c == nil {
		t.Fatalf("Create(*TypeVar) = nil")
	}
	if _, ok := c.(*TypeVarChecker); !ok {
		t.Errorf("Create(*TypeVar) = %T, want *TypeVarChecker", c)
	}
}

func TestCreateIsIdempotentOnCheckers(t *testing.T) {
	c := NewTypeChecker(intType)
	if got := Create(c); got != Checker(c) {
		t.Errorf("Create(checker) returned a different instance")
	}
	first := Create(intType)
	if got := Create(first); got != first {
		t.Errorf("Create(Create(x)) returned a different instance")
	}
}

func TestCreateNoMatch(t *testing.T) {
	// A bare int is not an annotation shape anything recognizes. No match
	// is not an error in the registry; the caller decides.
	if c := Create(42); c != nil {
		t.Errorf("Create(42) = %T, want nil", c)
	}
}

func TestRegistrationOrder(t *testing.T) {
	withCleanState(t)

	matchesString := func(annotation any) bool {
		_, ok := annotation.(string)
		return ok
	}

	Register(matchesString, func(any) Checker { return &tagChecker{tag: "first"} })
	Register(matchesString, func(any) Checker { return &tagChecker{tag: "second"} })

	if got := Create("x").(*tagChecker).tag; got != "first" {
		t.Errorf("earliest matching entry should win, got %q", got)
	}

	RegisterFirst(matchesString, func(any) Checker { return &tagChecker{tag: "prepended"} })
	if got := Create("x").(*tagChecker).tag; got != "prepended" {
		t.Errorf("prepended entry should win, got %q", got)
	}
}

func TestSnapshotRestoresRegistryAndFlag(t *testing.T) {
	snap := TakeSnapshot()

	Register(func(any) bool { return true }, func(any) Checker { return &tagChecker{tag: "t"} })
	Disable()

	RestoreSnapshot(snap)
	if !Enabled() {
		t.Errorf("enable flag not restored")
	}
	if c := Create(42); c != nil {
		t.Errorf("registry not restored: Create(42) = %T, want nil", c)
	}
}

func TestEnableSwitch(t *testing.T) {
	withCleanState(t)

	if !Enabled() {
		t.Fatalf("checking should be enabled by default")
	}
	Disable()
	if Enabled() {
		t.Errorf("Enabled() = true after Disable()")
	}
	Enable()
	if !Enabled() {
		t.Errorf("Enabled() = false after Enable()")
	}
}

func TestBuiltinSeedingOrder(t *testing.T) {
	// The type-variable predicate must come before the plain-type
	// catch-all. A *TypeVar is not a reflect.Type, so this cannot
	// misdispatch today, but the ordering is a registry contract that
	// richer shapes (proto messages, generics) rely on.
	tv := NewTypeVar("T")
	if _, ok := Create(tv).(*TypeVarChecker); !ok {
		t.Errorf("type variable misdispatched")
	}
	var rt reflect.Type = reflect.TypeOf(circle{})
	if _, ok := Create(rt).(*TypeChecker); !ok {
		t.Errorf("plain type misdispatched")
	}
}
