// Package deferred provides a resolve-once container for values that are
// produced asynchronously. It is the runtime counterpart of the deferred
// layer in the typeexpr algebra.
package deferred

import (
	"context"
	"reflect"
	"sync"
)

// Value holds a value of type T that becomes available at some later point.
// The zero Value is not usable; create instances with New or Resolved.
type Value[T any] struct {
	once sync.Once
	done chan struct{}
	val  T
}

// New returns an unresolved Value.
func New[T any]() *Value[T] {
	return &Value[T]{done: make(chan struct{})}
}

// Resolved returns a Value already holding v.
func Resolved[T any](v T) *Value[T] {
	d := New[T]()
	d.Resolve(v)
	return d
}

// Resolve supplies the value. The first call wins; later calls are no-ops.
func (d *Value[T]) Resolve(v T) {
	d.once.Do(func() {
		d.val = v
		close(d.done)
	})
}

// Await blocks until the value is resolved or ctx is done.
func (d *Value[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-d.done:
		return d.val, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// TryGet returns the value if it has been resolved.
func (d *Value[T]) TryGet() (T, bool) {
	select {
	case <-d.done:
		return d.val, true
	default:
		var zero T
		return zero, false
	}
}

// ElemType reports the payload type T. It satisfies typeexpr.Elemer so
// declaration scanning sees through the container.
func (d *Value[T]) ElemType() reflect.Type {
	return reflect.TypeFor[T]()
}
