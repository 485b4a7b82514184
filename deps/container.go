package deps

import "reflect"

// Key identifies a binding within a Container.
type Key struct {
	Type reflect.Type
	Name string
}

func (k Key) String() string {
	if k.Name == "" {
		return typeName(k.Type)
	}
	return typeName(k.Type) + "#" + k.Name
}

// Container is a chained key/value store of capability objects. Lookups
// check the local entries first and then walk the parent chain. A Container
// never owns its parent.
//
// Containers are written while the tree loads and only read afterwards; they
// are not safe for concurrent writers.
type Container struct {
	parent  *Container
	entries map[Key]any
}

// New creates a container chained to parent. A nil parent creates a root.
func New(parent *Container) *Container {
	return &Container{parent: parent, entries: make(map[Key]any)}
}

// Parent returns the container this one reads through to, or nil for a root.
func (c *Container) Parent() *Container {
	return c.parent
}

// Len returns the number of bindings registered directly in this container.
func (c *Container) Len() int {
	return len(c.entries)
}

// Option adjusts the key a value is cached under, or how a slot resolves.
type Option func(*options)

type options struct {
	as       reflect.Type
	name     string
	optional bool
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// As caches a value under typ instead of its dynamic type.
func As(typ reflect.Type) Option {
	return func(o *options) { o.as = typ }
}

// Named adds a name to the key.
func Named(name string) Option {
	return func(o *options) { o.name = name }
}

// Optional marks a resolved slot as allowed to stay unset when nothing in the
// chain matches. It has no effect on cached values.
func Optional() Option {
	return func(o *options) { o.optional = true }
}

// Cache registers instance in this container only. The key type is the
// instance's dynamic type unless As is given. Registering an existing key
// overwrites it. Nil instances, including typed nils, are ignored.
func (c *Container) Cache(instance any, opts ...Option) {
	if isNil(instance) {
		return
	}
	o := collect(opts)
	typ := o.as
	if typ == nil {
		typ = reflect.TypeOf(instance)
	}
	c.entries[Key{Type: typ, Name: o.name}] = instance
}

// CacheAs registers v under the static type T, which is usually an interface
// the consumers resolve.
func CacheAs[T any](c *Container, v T, opts ...Option) {
	c.Cache(v, append([]Option{As(TypeFor[T]())}, opts...)...)
}

// Get returns the instance registered under (typ, name) in this container or
// the nearest ancestor that has one.
func (c *Container) Get(typ reflect.Type, name string) (any, bool) {
	key := Key{Type: typ, Name: name}
	for s := c; s != nil; s = s.parent {
		if v, ok := s.entries[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// Get is the typed form of Container.Get.
func Get[T any](c *Container, name string) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}
	v, ok := c.Get(reflect.TypeFor[T](), name)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// TypeFor returns the reflect.Type of T, for use with As.
func TypeFor[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
