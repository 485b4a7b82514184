package deps

import "reflect"

// Dependant is implemented by nodes with members filled from the enclosing
// container at load time. A type embedding another Dependant appends the
// embedded type's slots to its own.
type Dependant interface {
	ResolvedSlots() []Slot
}

// Provider is implemented by nodes that publish values to their descendants.
type Provider interface {
	CachedBindings() []Binding
}

// Slot declares one member to be resolved. Build slots with Resolve.
type Slot struct {
	Member   string
	Key      Key
	Optional bool

	dst    reflect.Value // *T written by assign
	assign func(v any) bool
}

// Resolve declares that the member called member is written through dst with
// the instance bound to type T. Named selects a named binding and Optional
// allows the binding to be missing.
//
// When the node is a struct pointer, member must be the name of the
// unexported field dst points at. Inject rejects exported fields, unknown
// names and names that label a different field.
func Resolve[T any](member string, dst *T, opts ...Option) Slot {
	o := collect(opts)
	return Slot{
		Member:   member,
		Key:      Key{Type: reflect.TypeFor[T](), Name: o.name},
		Optional: o.optional,
		dst:      reflect.ValueOf(dst),
		assign: func(v any) bool {
			t, ok := v.(T)
			if !ok {
				return false
			}
			*dst = t
			return true
		},
	}
}

// Binding declares one value to publish into the node's derived scope.
type Binding struct {
	Member string // empty for the node itself
	Key    Key
	Value  any

	self bool
}

// Cache publishes value under its declared type T, or the type given with As.
// The value is read when the scope is derived; nil values are skipped then.
func Cache[T any](member string, value T, opts ...Option) Binding {
	o := collect(opts)
	typ := o.as
	if typ == nil {
		typ = reflect.TypeFor[T]()
	}
	return Binding{Member: member, Key: Key{Type: typ, Name: o.name}, Value: value}
}

// CacheSelf publishes the node itself. Self bindings are registered before
// member bindings.
func CacheSelf[T any](node T, opts ...Option) Binding {
	b := Cache("", node, opts...)
	b.self = true
	return b
}

// isNil reports whether v is nil or a typed nil of a nillable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
