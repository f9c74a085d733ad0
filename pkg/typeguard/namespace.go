package typeguard

import (
	"reflect"
	"sync"
)

// bindings maps type variables (by identity) to the concrete types they are
// currently bound to.
type bindings map[*TypeVar]reflect.Type

// instanceScopes is the side table holding per-instance binding stores,
// keyed by instance identity. It replaces attaching hidden state to the
// instance itself: an instance of a Generic type gets its store created
// lazily on the first instance-scope bind and keeps it until cleared.
//
// The table is process-wide, so it takes a mutex: establishing a binding is
// a read-check-then-write sequence and generic-typed instances may be
// checked from several goroutines at once. The same mutex guards every
// access to the instance stores themselves, reads included, since two
// namespaces for one instance share its store. Call-scope stores are
// per-call and unshared, and need no locks.
var (
	instanceMu     sync.Mutex
	instanceScopes = make(map[Generic]bindings)
)

// ClearInstanceBindings drops the persistent binding store of one instance.
// Call it when an instance is discarded; the side table does not observe
// garbage collection.
func ClearInstanceBindings(instance Generic) {
	instanceMu.Lock()
	delete(instanceScopes, instance)
	instanceMu.Unlock()
}

// ResetInstanceBindings drops every instance-scope binding store. Intended
// for test isolation.
func ResetInstanceBindings() {
	instanceMu.Lock()
	instanceScopes = make(map[Generic]bindings)
	instanceMu.Unlock()
}

// Namespace holds type-variable bindings for one outer call.
//
// It consists of two sub-scopes: a call-scope store owned exclusively by the
// namespace and discarded with it, and a reference to the instance-scope
// store of the receiver instance (when the namespace was seeded with one),
// which persists across calls on that instance. Scope selection on bind is
// structural: a variable declared by the instance's generic type goes to the
// instance store, everything else to the call store.
//
// A namespace is created per call, threaded through every checker invocation
// of that call so bindings established while checking one argument are
// visible when checking the next, then dropped. Most namespaces are never
// mutated at all.
type Namespace struct {
	ns         bindings
	instance   Generic
	instanceNS bindings // captured at construction; created lazily on first instance bind
}

// NewNamespace creates a namespace for one outer call. instance is the
// receiver of the call when the receiver's type is generic, nil otherwise.
func NewNamespace(instance Generic) *Namespace {
	n := &Namespace{ns: make(bindings), instance: instance}
	if instance != nil {
		instanceMu.Lock()
		n.instanceNS = instanceScopes[instance]
		instanceMu.Unlock()
	}
	return n
}

// Bind establishes a binding of tv to t. The binding lands in the instance
// scope if tv is one of the declared type parameters of the namespace's
// instance, in the call scope otherwise. A nil tv or a nil t is a
// specification error and panics: nil is the lookup functions' "unbound"
// answer, so a nil binding would be indistinguishable from no binding.
func (n *Namespace) Bind(tv *TypeVar, t reflect.Type) {
	if tv == nil {
		panic(NewSpecificationError("Bind requires a type variable, got nil"))
	}
	if t == nil {
		panic(NewSpecificationError("Bind requires a type to bind %s to, got nil", tv.name))
	}
	if n.isGenericIn(tv) {
		n.bindToInstance(tv, t)
		return
	}
	n.ns[tv] = t
}

// isGenericIn reports whether tv belongs to the declared type parameters of
// the namespace's instance.
func (n *Namespace) isGenericIn(tv *TypeVar) bool {
	if n.instance == nil {
		return false
	}
	for _, p := range n.instance.TypeParameters() {
		if p == tv {
			return true
		}
	}
	return false
}

func (n *Namespace) bindToInstance(tv *TypeVar, t reflect.Type) {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	if n.instanceNS == nil {
		if existing := instanceScopes[n.instance]; existing != nil {
			n.instanceNS = existing
		} else {
			n.instanceNS = make(bindings)
			instanceScopes[n.instance] = n.instanceNS
		}
	}
	n.instanceNS[tv] = t
}

// IsBound reports whether tv is bound in either scope.
func (n *Namespace) IsBound(tv *TypeVar) bool {
	return n.BindingOf(tv) != nil
}

// BindingOf returns the type tv is bound to, checking the call scope first
// and falling back to the instance scope. Returns nil if unbound.
func (n *Namespace) BindingOf(tv *TypeVar) reflect.Type {
	if t, ok := n.ns[tv]; ok {
		return t
	}
	if n.instanceNS != nil {
		instanceMu.Lock()
		t, ok := n.instanceNS[tv]
		instanceMu.Unlock()
		if ok {
			return t
		}
	}
	return nil
}

// IsCompatible checks whether observed conforms to tv, binding tv to
// observed as a side effect if it is not yet bound.
//
// The steps, in order: an existing binding that violates the variable's
// declared bound fails outright (note the test is against the existing
// binding, not the observed type — see the package tests pinning this). An
// unbound variable binds to observed and succeeds. Otherwise the variance
// flag decides: covariant accepts subtypes of the binding, contravariant
// supertypes, invariant only the exact binding. A nil tv is a specification
// error and panics.
func (n *Namespace) IsCompatible(tv *TypeVar, observed reflect.Type) bool {
	if tv == nil {
		panic(NewSpecificationError("IsCompatible requires a type variable, got nil"))
	}
	binding := n.BindingOf(tv)
	if binding != nil && tv.bound != nil && !Subtype(binding, tv.bound) {
		return false // existing binding violates the declared bound
	}
	if binding == nil {
		n.Bind(tv, observed)
		return true // initial binding
	}
	switch {
	case tv.covariant:
		return Subtype(observed, binding)
	case tv.contravariant:
		return Subtype(binding, observed)
	default:
		return observed == binding
	}
}
