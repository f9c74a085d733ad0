package typeguard

// Predicate reports whether an annotation value has the shape a checker
// family understands.
type Predicate func(annotation any) bool

// Factory builds a Checker from an annotation its predicate accepted.
type Factory func(annotation any) Checker

type entry struct {
	pred    Predicate
	factory Factory
}

// registered is the process-wide dispatch table, scanned in order on every
// Create. It is append-mostly configuration: populate it during process
// initialization, before any checking runs. Registration order is a
// process-wide concern — an entry registered first shadows every later
// entry whose predicate also matches.
var registered []entry

// Register appends a checker family: pred recognizes the annotation shape,
// factory builds the checker for it.
func Register(pred Predicate, factory Factory) {
	registered = append(registered, entry{pred: pred, factory: factory})
}

// RegisterFirst prepends a checker family so it is consulted before all
// existing entries. Use it for annotation shapes that a broader predicate
// would otherwise swallow: a proto message type, for example, is
// reflectively an ordinary struct pointer type and must be recognized
// before the plain-type catch-all.
func RegisterFirst(pred Predicate, factory Factory) {
	registered = append([]entry{{pred: pred, factory: factory}}, registered...)
}

// Create resolves an annotation to a Checker. An annotation that already is
// a Checker passes through untouched. Otherwise the registered entries are
// scanned in order and the first matching predicate's factory decides.
// Returns nil when no predicate matches; whether that is an error is the
// caller's policy, not the registry's.
func Create(annotation any) Checker {
	if c, ok := annotation.(Checker); ok {
		return c
	}
	for _, e := range registered {
		if e.pred(annotation) {
			return e.factory(annotation)
		}
	}
	return nil
}

// Snapshot captures the registry contents and the enable flag so tests can
// restore a known state between cases.
type Snapshot struct {
	entries []entry
	enabled bool
}

// TakeSnapshot returns the current registry and enable-flag state.
func TakeSnapshot() Snapshot {
	entries := make([]entry, len(registered))
	copy(entries, registered)
	return Snapshot{entries: entries, enabled: Enabled()}
}

// RestoreSnapshot reinstates a previously captured state.
func RestoreSnapshot(s Snapshot) {
	registered = make([]entry, len(s.entries))
	copy(registered, s.entries)
	if s.enabled {
		Enable()
	} else {
		Disable()
	}
}

func init() {
	registerBuiltins()
}

// registerBuiltins seeds the registry in one explicit pass so ordering does
// not depend on file initialization order. Shapes carrying type-parameter
// structure come first; the plain-type membership test is the catch-all and
// stays last.
func registerBuiltins() {
	Register(isTypeVarAnnotation, newTypeVarChecker)
	Register(isTypeAnnotation, newTypeChecker)
}
