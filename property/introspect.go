package property

import (
	"fmt"
	"reflect"

	"property-mapper/typeexpr"
)

// OutputPropertyTypes resolves the effective payload type of every
// synthesized getter on an output type: each getter's declared type with
// one deferred layer and one optional layer stripped, keyed by wire name.
func OutputPropertyTypes(t reflect.Type) (map[string]typeexpr.Expr, error) {
	meta, ok := Metadata(t)
	if !ok || meta.kind != KindOutput {
		return nil, fmt.Errorf("%w: %s needs %s", ErrKindRequired, t, KindOutput)
	}

	result := make(map[string]typeexpr.Expr, len(meta.fields))
	for _, field := range meta.fields {
		acc := meta.accessors[field]
		if acc.Type == nil {
			continue
		}
		result[acc.WireName] = typeexpr.Unwrap(acc.Type)
	}
	return result, nil
}

// ResourcePropertyTypes resolves the effective payload type of every
// declared field on t, keyed by wire name. The type does not need to carry
// a kind tag: unregistered resource structs are scanned in place.
func ResourcePropertyTypes(t reflect.Type) (map[string]typeexpr.Expr, error) {
	t = baseType(t)

	var (
		fields      []string
		descriptors map[string]Descriptor
	)

	if meta, ok := lookupMeta(t); ok {
		fields = meta.fields
		descriptors = meta.descriptors
	} else {
		if t == nil || t.Kind() != reflect.Struct {
			return nil, fmt.Errorf("%w: %s", ErrNotAStruct, t)
		}
		var err error
		fields, descriptors, err = scanFields(t, &regConfig{})
		if err != nil {
			return nil, err
		}
	}

	result := make(map[string]typeexpr.Expr, len(fields))
	for _, field := range fields {
		desc := descriptors[field]
		result[desc.WireName()] = typeexpr.Unwrap(desc.Type())
	}
	return result, nil
}
