package property

import (
	"reflect"
	"sync"
)

// Meta is the metadata recorded for a registered type: its kind tag, the
// ordered field descriptors and the synthesized accessors. Treat it as
// read-only; the registry never mutates an entry after insertion.
type Meta struct {
	kind        KindEnum
	typ         reflect.Type
	fields      []string
	descriptors map[string]Descriptor
	accessors   map[string]Accessor
	translate   func(string) string
	isMap       bool
}

// Kind reports the type's kind tag.
func (m *Meta) Kind() KindEnum { return m.kind }

// Type reports the registered type (pointers are registered by element).
func (m *Meta) Type() reflect.Type { return m.typ }

// Fields reports the field names in declaration order.
func (m *Meta) Fields() []string {
	out := make([]string, len(m.fields))
	copy(out, m.fields)
	return out
}

// Descriptor looks up the descriptor for an in-memory field name.
func (m *Meta) Descriptor(field string) (Descriptor, bool) {
	d, ok := m.descriptors[field]
	return d, ok
}

// Accessor looks up the synthesized accessor for an in-memory field name.
func (m *Meta) Accessor(field string) (Accessor, bool) {
	a, ok := m.accessors[field]
	return a, ok
}

// registry is the side table holding metadata keyed by type identity. It is
// populated at registration time and read-only afterwards. Registering the
// same type concurrently from several goroutines is caller error; the lock
// only keeps lookups safe against unrelated registrations.
var registry = struct {
	mu    sync.RWMutex
	types map[reflect.Type]*Meta
}{types: make(map[reflect.Type]*Meta)}

func lookupMeta(t reflect.Type) (*Meta, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	m, ok := registry.types[t]
	return m, ok
}

func insertMeta(m *Meta) error {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, ok := registry.types[m.typ]; ok {
		return ErrAlreadyRegistered
	}
	registry.types[m.typ] = m
	return nil
}

// baseType strips pointer indirection so instances and samples passed by
// pointer resolve to the same registry key.
func baseType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// Metadata returns the metadata recorded for t, if any.
func Metadata(t reflect.Type) (*Meta, bool) {
	return lookupMeta(baseType(t))
}

// IsInputType reports whether t is registered as an input type.
func IsInputType(t reflect.Type) bool {
	m, ok := Metadata(t)
	return ok && m.kind == KindInput
}

// IsOutputType reports whether t is registered as an output type.
func IsOutputType(t reflect.Type) bool {
	m, ok := Metadata(t)
	return ok && m.kind == KindOutput
}

func metaOf(instance any) (*Meta, bool) {
	if instance == nil {
		return nil, false
	}
	return Metadata(reflect.TypeOf(instance))
}
