package property

import (
	"maps"
	"reflect"
	"sync"
)

// Store is the per-instance wire-name to value container. Input and output
// struct types embed it by value; all field access flows through it. The
// map is allocated lazily on first write and guarded by a per-instance
// mutex so a shared instance tolerates concurrent field access.
type Store struct {
	mu     sync.Mutex
	values map[string]any
}

func (s *Store) propertyStore() *Store { return s }

// storeHolder is satisfied by any struct embedding Store, through the
// promoted propertyStore method. Instances must be passed by pointer.
type storeHolder interface {
	propertyStore() *Store
}

func storeOf(instance any) (*Store, bool) {
	h, ok := instance.(storeHolder)
	if !ok {
		return nil, false
	}
	return h.propertyStore(), true
}

func (s *Store) get(name string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[name]
}

func (s *Store) set(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[name] = value
}

func (s *Store) replace(values map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = values
}

func (s *Store) snapshot() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.values == nil {
		return nil
	}
	return maps.Clone(s.values)
}

// Get reads the value stored under the given wire name.
//
// For input types a missing value reads as nil, never as an error. For
// output types the class-supplied translate hook is applied to the name
// first; named-map output types are consulted directly, struct output
// types through their embedded Store.
func Get(instance any, name string) (any, error) {
	if name == "" {
		return nil, ErrMissingName
	}

	meta, ok := metaOf(instance)
	if !ok {
		return nil, ErrNotRegistered
	}

	switch meta.kind {
	case KindInput:
		store, ok := storeOf(instance)
		if !ok {
			return nil, ErrNoStore
		}
		return store.get(name), nil

	case KindOutput:
		if meta.translate != nil {
			name = meta.translate(name)
		}

		if meta.isMap {
			rv := reflect.ValueOf(instance)
			for rv.Kind() == reflect.Ptr {
				rv = rv.Elem()
			}
			v := rv.MapIndex(reflect.ValueOf(name))
			if !v.IsValid() {
				return nil, nil
			}
			return v.Interface(), nil
		}

		store, ok := storeOf(instance)
		if !ok {
			return nil, ErrNoStore
		}
		return store.get(name), nil

	default:
		return nil, ErrNotRegistered
	}
}

// Set writes a value under the given wire name, overwriting any prior
// value. Only input types are settable.
func Set(instance any, name string, value any) error {
	if name == "" {
		return ErrMissingName
	}

	meta, ok := metaOf(instance)
	if !ok {
		return ErrNotRegistered
	}
	if meta.kind != KindInput {
		return ErrNotInputType
	}

	store, ok := storeOf(instance)
	if !ok {
		return ErrNoStore
	}
	store.set(name, value)
	return nil
}

// NewOutput seeds an output instance's store wholesale from an external
// payload. The payload must be a map[string]any; anything else reports
// ErrNotAMapping. Named-map output types are their own store and do not
// use this entry point.
func NewOutput(instance any, payload any) error {
	meta, ok := metaOf(instance)
	if !ok {
		return ErrNotRegistered
	}
	if meta.kind != KindOutput {
		return ErrNotOutputType
	}

	values, ok := payload.(map[string]any)
	if !ok {
		return ErrNotAMapping
	}

	store, ok := storeOf(instance)
	if !ok {
		return ErrNoStore
	}
	store.replace(values)
	return nil
}
