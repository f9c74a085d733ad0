package typeguard

import "testing"

func TestTypeVarIdentity(t *testing.T) {
	a := NewTypeVar("T")
	b := NewTypeVar("T")

	ns := NewNamespace(nil)
	ns.Bind(a, intType)
	if ns.IsBound(b) {
		t.Errorf("variables with the same name must not share bindings")
	}
}

func TestTypeVarProperties(t *testing.T) {
	tv := NewTypeVar("T", WithBound(shapeType), Covariant())
	if tv.Name() != "T" {
		t.Errorf("Name = %q, want T", tv.Name())
	}
	if tv.Bound() != shapeType {
		t.Errorf("Bound = %v, want %v", tv.Bound(), shapeType)
	}
	if !tv.IsCovariant() || tv.IsContravariant() {
		t.Errorf("variance flags wrong: covariant=%v contravariant=%v", tv.IsCovariant(), tv.IsContravariant())
	}
}

func TestTypeVarString(t *testing.T) {
	tests := []struct {
		name string
		tv   *TypeVar
		want string
	}{
		{"invariant", NewTypeVar("T"), "T"},
		{"covariant", NewTypeVar("T", Covariant()), "+T"},
		{"contravariant", NewTypeVar("T", Contravariant()), "-T"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tv.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConflictingVariancePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("conflicting variance did not panic")
		}
		if _, ok := r.(*SpecificationError); !ok {
			t.Errorf("panic value = %T, want *SpecificationError", r)
		}
	}()
	NewTypeVar("T", Covariant(), Contravariant())
}
