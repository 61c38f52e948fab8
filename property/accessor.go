package property

import (
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"property-mapper/typeexpr"
)

// Accessor is a synthesized entry point for one field: a getter bound to
// the field's wire name and, for input types, a setter. Accessors read and
// write the instance's value store; they never touch struct fields.
type Accessor struct {
	Field    string
	WireName string
	Type     typeexpr.Expr

	Get func(instance any) (any, error)
	Set func(instance any, value any) error
}

// synthesizeAccessors builds the per-field accessor table for a registered
// type. A user-authored getter supplied at registration replaces the
// synthesized one and its wire name wins; setters for input kinds always
// write straight into the store under the effective wire name.
func synthesizeAccessors(meta *Meta, userGetters map[string]Accessor) map[string]Accessor {
	accessors := make(map[string]Accessor, len(meta.fields))

	for _, field := range meta.fields {
		desc := meta.descriptors[field]

		acc := Accessor{
			Field:    field,
			WireName: desc.WireName(),
			Type:     desc.Type(),
		}

		if user, ok := userGetters[field]; ok {
			if user.WireName != "" {
				acc.WireName = user.WireName
			}
			if user.Type != nil {
				acc.Type = user.Type
			}
			acc.Get = user.Get
		}

		wire := acc.WireName
		if acc.Get == nil {
			acc.Get = func(instance any) (any, error) {
				return Get(instance, wire)
			}
		}
		if meta.kind == KindInput {
			acc.Set = func(instance any, value any) error {
				return Set(instance, wire, value)
			}
		}

		accessors[field] = acc
	}

	return accessors
}

// Getter tags a user-authored accessor function as a getter with the given
// wire name. When name is empty the function's own name is used. The
// function must take the instance as its only argument and return the
// value, optionally with an error.
func Getter(fn any, name string) (Accessor, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func {
		return Accessor{}, ErrNotAGetter
	}

	fnType := fnVal.Type()
	if fnType.NumIn() != 1 || fnType.NumOut() < 1 || fnType.NumOut() > 2 {
		return Accessor{}, ErrNotAGetter
	}
	if fnType.NumOut() == 2 && !isError(fnType.Out(1)) {
		return Accessor{}, ErrNotAGetter
	}

	if name == "" {
		name = funcName(fnVal)
	}
	if name == "" {
		return Accessor{}, fmt.Errorf("getter: %w", ErrMissingName)
	}

	acc := Accessor{
		WireName: name,
		Type:     typeexpr.FromReflectType(fnType.Out(0)),
	}

	acc.Get = func(instance any) (any, error) {
		in := reflect.ValueOf(instance)
		if !in.IsValid() || !in.Type().AssignableTo(fnType.In(0)) {
			return nil, fmt.Errorf("getter %q: instance is not assignable to %s", name, fnType.In(0))
		}

		out := fnVal.Call([]reflect.Value{in})
		if len(out) == 2 && !out[1].IsNil() {
			return nil, out[1].Interface().(error)
		}
		return out[0].Interface(), nil
	}

	return acc, nil
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

func isError(t reflect.Type) bool {
	return t.Implements(errType)
}

// funcName extracts the bare function name from its runtime symbol, e.g.
// "property-mapper/examples/bucket.name" becomes "name".
func funcName(fnVal reflect.Value) string {
	pc := runtime.FuncForPC(fnVal.Pointer())
	if pc == nil {
		return ""
	}

	name := path.Base(pc.Name())
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		name = name[idx+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
