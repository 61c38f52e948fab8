package property

import "reflect"

// Equaler is respected by Equal: a type defining its own equality keeps it.
type Equaler interface {
	Equal(other any) bool
}

// Equal reports structural equality of two registered instances: the exact
// same dynamic type with value stores that compare equal as maps. Named-map
// output types compare as the maps themselves. Instances of different
// types never compare equal, whatever their store contents.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}

	meta, ok := metaOf(a)
	if !ok {
		return false
	}

	if meta.isMap {
		return reflect.DeepEqual(a, b)
	}

	sa, aok := storeOf(a)
	sb, bok := storeOf(b)
	if !aok || !bok {
		return false
	}
	return reflect.DeepEqual(sa.snapshot(), sb.snapshot())
}
