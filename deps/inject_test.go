package deps

import (
	"errors"
	"strings"
	"testing"
)

// --- test nodes ---

type plainNode struct{}

type boxNode struct {
	renderer renderer
	backup   renderer
}

func (b *boxNode) ResolvedSlots() []Slot {
	return []Slot{
		Resolve("renderer", &b.renderer),
		Resolve("backup", &b.backup, Named("backup"), Optional()),
	}
}

type leakyNode struct {
	Renderer renderer
}

func (n *leakyNode) ResolvedSlots() []Slot {
	return []Slot{Resolve("Renderer", &n.Renderer)}
}

type mixedNode struct {
	renderer renderer
	Exposed  *typeA
}

func (n *mixedNode) ResolvedSlots() []Slot {
	return []Slot{
		Resolve("renderer", &n.renderer),
		Resolve("Exposed", &n.Exposed),
	}
}

// mislabeledNode names an unexported member but writes an exported field.
type mislabeledNode struct {
	Renderer renderer
}

func (n *mislabeledNode) ResolvedSlots() []Slot {
	return []Slot{Resolve("renderer", &n.Renderer)}
}

// unknownMemberNode names a field that does not exist.
type unknownMemberNode struct {
	renderer renderer
}

func (n *unknownMemberNode) ResolvedSlots() []Slot {
	return []Slot{Resolve("rendrer", &n.renderer)}
}

// crossedNode labels one field but writes another of the same type.
type crossedNode struct {
	main   renderer
	backup renderer
}

func (n *crossedNode) ResolvedSlots() []Slot {
	return []Slot{Resolve("main", &n.backup)}
}

// literalSlotNode declares a slot without Resolve.
type literalSlotNode struct{}

func (literalSlotNode) ResolvedSlots() []Slot {
	return []Slot{{Member: "count", Key: Key{Type: TypeFor[int]()}}}
}

type publisher struct {
	track   *typeA
	spare   *typeA
	missing *typeA
}

func (p *publisher) CachedBindings() []Binding {
	return []Binding{
		CacheSelf(p),
		Cache("track", p.track),
		Cache("spare", p.spare, Named("spare")),
		Cache("missing", p.missing, Named("missing")),
	}
}

type silentPublisher struct{}

func (silentPublisher) CachedBindings() []Binding { return nil }

// embeddedNode extends boxNode and declares one more slot.
type embeddedNode struct {
	boxNode
	track *typeA
}

func (e *embeddedNode) ResolvedSlots() []Slot {
	return append(e.boxNode.ResolvedSlots(), Resolve("track", &e.track))
}

// --- DeriveScope ---

func TestDeriveScopeReturnsParentWhenNothingCached(t *testing.T) {
	parent := New(nil)
	if got := DeriveScope(&plainNode{}, parent); got != parent {
		t.Error("non-provider should get the parent container back")
	}
	if got := DeriveScope(silentPublisher{}, parent); got != parent {
		t.Error("provider with no bindings should get the parent container back")
	}
}

func TestDeriveScopeRegistersBindings(t *testing.T) {
	parent := New(nil)
	p := &publisher{track: &typeA{id: 1}, spare: &typeA{id: 2}}

	scope := DeriveScope(p, parent)
	if scope == parent {
		t.Fatal("expected a new container")
	}
	if scope.Parent() != parent {
		t.Error("derived scope should chain to parent")
	}
	if got, _ := Get[*publisher](scope, ""); got != p {
		t.Error("node itself should be cached")
	}
	if got, _ := Get[*typeA](scope, ""); got != p.track {
		t.Error("track should be cached")
	}
	if got, _ := Get[*typeA](scope, "spare"); got != p.spare {
		t.Error("spare should be cached under its name")
	}
	if _, ok := Get[*typeA](scope, "missing"); ok {
		t.Error("nil member should be skipped")
	}
	if scope.Len() != 3 {
		t.Errorf("Len = %d, want 3", scope.Len())
	}
}

func TestDeriveScopeReadsCurrentValues(t *testing.T) {
	p := &publisher{}
	scope := DeriveScope(p, nil)
	if _, ok := Get[*typeA](scope, ""); ok {
		t.Error("nil track should not be published")
	}

	p.track = &typeA{id: 7}
	scope = DeriveScope(p, nil)
	if got, _ := Get[*typeA](scope, ""); got != p.track {
		t.Error("track set before derive should be published")
	}
}

func TestDeriveScopeShadowsParent(t *testing.T) {
	parent := New(nil)
	outer := &typeA{id: 1}
	parent.Cache(outer)

	p := &publisher{track: &typeA{id: 2}}
	scope := DeriveScope(p, parent)

	if got, _ := Get[*typeA](scope, ""); got != p.track {
		t.Error("derived scope should shadow the parent binding")
	}
	if got, _ := Get[*typeA](parent, ""); got != outer {
		t.Error("parent must be unchanged")
	}
}

// --- Inject ---

func TestInjectResolvesRequiredAndOptional(t *testing.T) {
	c := New(nil)
	main := &glRenderer{name: "main"}
	backup := &glRenderer{name: "backup"}
	CacheAs[renderer](c, main)
	CacheAs[renderer](c, backup, Named("backup"))

	b := &boxNode{}
	if err := Inject(b, c); err != nil {
		t.Fatalf("Inject: %v", err)
	}
	if b.renderer != main {
		t.Error("renderer not injected")
	}
	if b.backup != backup {
		t.Error("backup not injected")
	}
}

func TestInjectOptionalMissingLeavesDefault(t *testing.T) {
	c := New(nil)
	CacheAs[renderer](c, &glRenderer{name: "main"})

	b := &boxNode{}
	if err := Inject(b, c); err != nil {
		t.Fatalf("Inject: %v", err)
	}
	if b.backup != nil {
		t.Error("optional slot should stay nil")
	}
}

func TestInjectRequiredMissing(t *testing.T) {
	b := &boxNode{}
	err := Inject(b, New(nil))
	if err == nil {
		t.Fatal("expected error for missing renderer")
	}
	if !errors.Is(err, ErrUnresolved) {
		t.Errorf("errors.Is(err, ErrUnresolved) = false for %v", err)
	}
	var ue UnresolvedError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UnresolvedError, got %T", err)
	}
	if ue.Member != "renderer" || ue.Owner != "*deps.boxNode" {
		t.Errorf("UnresolvedError = %+v", ue)
	}
	if !strings.Contains(err.Error(), "deps.renderer") {
		t.Errorf("message should name the type: %s", err)
	}
}

func TestInjectNilScope(t *testing.T) {
	if err := Inject(&boxNode{}, nil); !errors.Is(err, ErrUnresolved) {
		t.Errorf("Inject with nil scope = %v, want ErrUnresolved", err)
	}
	if err := Inject(&plainNode{}, nil); err != nil {
		t.Errorf("node without slots should not fail: %v", err)
	}
}

func TestInjectEncapsulationViolation(t *testing.T) {
	c := New(nil)
	CacheAs[renderer](c, &glRenderer{})

	err := Inject(&leakyNode{}, c)
	if !errors.Is(err, ErrEncapsulation) {
		t.Fatalf("expected ErrEncapsulation, got %v", err)
	}
	var ee EncapsulationError
	if !errors.As(err, &ee) || ee.Member != "Renderer" {
		t.Errorf("EncapsulationError = %+v", ee)
	}
}

func TestInjectMemberNameMustMatchField(t *testing.T) {
	c := New(nil)
	CacheAs[renderer](c, &glRenderer{name: "main"})

	n := &mislabeledNode{}
	err := Inject(n, c)
	if !errors.Is(err, ErrEncapsulation) {
		t.Fatalf("exported field behind unexported label: got %v, want ErrEncapsulation", err)
	}
	if n.Renderer != nil {
		t.Error("exported field should not be written")
	}

	if err := Inject(&unknownMemberNode{}, c); !errors.Is(err, ErrEncapsulation) {
		t.Errorf("unknown member: got %v, want ErrEncapsulation", err)
	}

	x := &crossedNode{}
	err = Inject(x, c)
	var ee EncapsulationError
	if !errors.As(err, &ee) {
		t.Fatalf("crossed field: got %v, want EncapsulationError", err)
	}
	if ee.Member != "main" || ee.Reason == "" {
		t.Errorf("EncapsulationError = %+v", ee)
	}
	if x.main != nil || x.backup != nil {
		t.Error("no field should be written")
	}
}

func TestInjectLiteralSlotRejected(t *testing.T) {
	c := New(nil)
	c.Cache(7)

	err := Inject(literalSlotNode{}, c)
	if !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("got %v, want ErrInvalidSlot", err)
	}
	if !strings.Contains(err.Error(), "count") {
		t.Errorf("message should name the member: %s", err)
	}
}

func TestInjectEncapsulationCheckedBeforeResolve(t *testing.T) {
	// renderer is missing, but the exported member must be reported first.
	err := Inject(&mixedNode{}, New(nil))
	if !errors.Is(err, ErrEncapsulation) {
		t.Fatalf("expected ErrEncapsulation, got %v", err)
	}

	c := New(nil)
	CacheAs[renderer](c, &glRenderer{})
	n := &mixedNode{}
	if err := Inject(n, c); !errors.Is(err, ErrEncapsulation) {
		t.Fatalf("expected ErrEncapsulation, got %v", err)
	}
	if n.renderer != nil {
		t.Error("no slot should be written when encapsulation fails")
	}
}

func TestInjectTypeMismatch(t *testing.T) {
	c := New(nil)
	// Cached under the interface key but not implementing it.
	c.Cache(&typeA{}, As(TypeFor[renderer]()))

	err := Inject(&boxNode{}, c)
	var me TypeMismatchError
	if !errors.As(err, &me) {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
	if me.Actual != "*deps.typeA" {
		t.Errorf("Actual = %q", me.Actual)
	}
}

func TestInjectEmbeddedSlots(t *testing.T) {
	c := New(nil)
	r := &glRenderer{}
	track := &typeA{id: 3}
	CacheAs[renderer](c, r)
	c.Cache(track)

	e := &embeddedNode{}
	if err := Inject(e, c); err != nil {
		t.Fatalf("Inject: %v", err)
	}
	if e.renderer != r || e.track != track {
		t.Error("embedded and own slots should both be injected")
	}
}

func TestIsNil(t *testing.T) {
	var p *typeA
	var r renderer
	var m map[string]int
	if !isNil(nil) || !isNil(p) || !isNil(m) {
		t.Error("nil values should report nil")
	}
	if !isNil(r) {
		t.Error("nil interface should report nil")
	}
	if isNil(&typeA{}) || isNil(3) || isNil("") {
		t.Error("non-nil values should not report nil")
	}
}
