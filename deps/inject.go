package deps

import (
	"fmt"
	"go/token"
	"reflect"
)

// DeriveScope returns the container target's descendants should resolve
// from. When target publishes nothing the parent is returned unchanged.
// Otherwise a new container chained to parent holds the node itself (if it
// publishes itself) followed by every non-nil published member.
func DeriveScope(target any, parent *Container) *Container {
	p, ok := target.(Provider)
	if !ok {
		return parent
	}
	bindings := p.CachedBindings()
	if len(bindings) == 0 {
		return parent
	}

	scope := New(parent)
	for _, b := range bindings {
		if b.self {
			scope.cacheKey(b.Key, b.Value)
		}
	}
	for _, b := range bindings {
		if !b.self {
			scope.cacheKey(b.Key, b.Value)
		}
	}
	return scope
}

func (c *Container) cacheKey(key Key, v any) {
	if isNil(v) {
		return
	}
	c.entries[key] = v
}

// Inject fills every slot target declares from scope. All slots are checked
// for encapsulation before any is resolved, so an exported member fails the
// load even when its dependency exists. For struct targets the member name
// must match the field the slot writes to.
func Inject(target any, scope *Container) error {
	d, ok := target.(Dependant)
	if !ok {
		return nil
	}
	slots := d.ResolvedSlots()
	if len(slots) == 0 {
		return nil
	}
	owner := fmt.Sprintf("%T", target)

	for _, s := range slots {
		if err := checkSlot(owner, target, s); err != nil {
			return err
		}
	}

	for _, s := range slots {
		v, found := scope.Get(s.Key.Type, s.Key.Name)
		if !found {
			if s.Optional {
				continue
			}
			return UnresolvedError{Owner: owner, Member: s.Member, Key: s.Key}
		}
		if !s.assign(v) {
			return TypeMismatchError{
				Owner:    owner,
				Member:   s.Member,
				Expected: typeName(s.Key.Type),
				Actual:   fmt.Sprintf("%T", v),
			}
		}
	}
	return nil
}

// checkSlot verifies that s was built with Resolve and that it writes an
// unexported field of target.
func checkSlot(owner string, target any, s Slot) error {
	if s.assign == nil || !s.dst.IsValid() || s.dst.IsNil() {
		return fmt.Errorf("%w: %s.%s", ErrInvalidSlot, owner, s.Member)
	}
	if token.IsExported(s.Member) {
		return EncapsulationError{Owner: owner, Member: s.Member}
	}

	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil
	}
	st := rv.Elem()
	sf, ok := st.Type().FieldByName(s.Member)
	if !ok {
		return EncapsulationError{Owner: owner, Member: s.Member, Reason: "no such field"}
	}
	f, err := st.FieldByIndexErr(sf.Index)
	if err != nil || f.Type() != s.dst.Type().Elem() || f.UnsafeAddr() != s.dst.Pointer() {
		return EncapsulationError{Owner: owner, Member: s.Member, Reason: "slot writes a different field"}
	}
	return nil
}
