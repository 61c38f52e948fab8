package property

// ToMap returns a copy of an input instance's value store as a plain
// wire-name to value map. An instance with nothing set yields an empty,
// non-nil map.
func ToMap(instance any) (map[string]any, error) {
	meta, ok := metaOf(instance)
	if !ok {
		return nil, ErrNotRegistered
	}
	if meta.kind != KindInput {
		return nil, ErrNotInputType
	}

	store, ok := storeOf(instance)
	if !ok {
		return nil, ErrNoStore
	}

	values := store.snapshot()
	if values == nil {
		values = make(map[string]any)
	}
	return values, nil
}
