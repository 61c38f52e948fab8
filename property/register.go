package property

import (
	"fmt"
	"reflect"

	"property-mapper/typeexpr"
)

// Option configures a registration.
type Option func(*regConfig)

type regConfig struct {
	defaults  map[string]any
	overrides map[string]Descriptor
	getters   map[string]Accessor
	translate func(string) string
}

// WithDefault records a default value for the named in-memory field.
func WithDefault(field string, value any) Option {
	return func(c *regConfig) {
		if c.defaults == nil {
			c.defaults = make(map[string]any)
		}
		c.defaults[field] = value
	}
}

// WithDescriptor supplies an explicit descriptor for the named field,
// overriding the wire name and default inferred from the declaration.
func WithDescriptor(field string, d Descriptor) Option {
	return func(c *regConfig) {
		if c.overrides == nil {
			c.overrides = make(map[string]Descriptor)
		}
		c.overrides[field] = d
	}
}

// WithTranslate installs a hook mapping wire names to alternate lookup keys
// on output-kind reads. The default is identity.
func WithTranslate(fn func(string) string) Option {
	return func(c *regConfig) { c.translate = fn }
}

// WithGetter replaces the synthesized getter for the named field with a
// user-authored accessor, typically built through Getter. The accessor's
// wire name overrides the declared one.
func WithGetter(field string, acc Accessor) Option {
	return func(c *regConfig) {
		if c.getters == nil {
			c.getters = make(map[string]Accessor)
		}
		c.getters[field] = acc
	}
}

// RegisterInputType registers sample's type as an input type: its declared
// fields become settable and are backed by the embedded Store.
//
// Registration happens once, at program initialization, before instances
// are created or shared; registering the same type from several goroutines
// concurrently is caller error.
func RegisterInputType(sample any, opts ...Option) error {
	return register(sample, KindInput, opts)
}

// RegisterOutputType registers sample's type as an output type: its
// declared fields are read-only and normally populated once via NewOutput.
// A named string-keyed map type may also be registered as an output type;
// it then acts as its own value store.
func RegisterOutputType(sample any, opts ...Option) error {
	return register(sample, KindOutput, opts)
}

func register(sample any, kind KindEnum, opts []Option) error {
	t := baseType(reflect.TypeOf(sample))
	if t == nil {
		return ErrNotAStruct
	}

	var cfg regConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	isMap := t.Kind() == reflect.Map && t.Key().Kind() == reflect.String

	switch {
	case isMap && kind == KindOutput:
		// A named map acts as its own store; nothing to scan.
	case t.Kind() == reflect.Struct:
		if !hasStore(t) {
			return fmt.Errorf("%w: %s", ErrNoStore, t)
		}
	default:
		return fmt.Errorf("%w: %s", ErrNotAStruct, t)
	}

	fields, descriptors, err := scanFields(t, &cfg)
	if err != nil {
		return err
	}

	for field := range cfg.defaults {
		if _, ok := descriptors[field]; !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, t, field)
		}
	}
	for field := range cfg.overrides {
		if _, ok := descriptors[field]; !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, t, field)
		}
	}
	for field := range cfg.getters {
		if _, ok := descriptors[field]; !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, t, field)
		}
	}

	meta := &Meta{
		kind:        kind,
		typ:         t,
		fields:      fields,
		descriptors: descriptors,
		translate:   cfg.translate,
		isMap:       isMap,
	}
	meta.accessors = synthesizeAccessors(meta, cfg.getters)

	return insertMeta(meta)
}

// scanFields is the declaration scanner: it walks t's own field
// declarations in order and produces one descriptor per field. Embedded
// fields are not scanned; a type extending another registers its new
// fields independently.
func scanFields(t reflect.Type, cfg *regConfig) ([]string, map[string]Descriptor, error) {
	descriptors := make(map[string]Descriptor)
	if t.Kind() != reflect.Struct {
		return nil, descriptors, nil
	}

	var fields []string

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			continue
		}

		desc, ok := cfg.overrides[f.Name]
		if !ok {
			wire := f.Name
			if tag, tagged := f.Tag.Lookup("prop"); tagged && tag != "" {
				wire = tag
			}

			var err error
			desc, err = New(wire)
			if err != nil {
				return nil, nil, fmt.Errorf("field %s.%s: %w", t, f.Name, err)
			}
		}

		if def, ok := cfg.defaults[f.Name]; ok {
			desc.def = def
		}

		desc = desc.withType(typeexpr.FromReflectType(f.Type))

		fields = append(fields, f.Name)
		descriptors[f.Name] = desc
	}

	return fields, descriptors, nil
}

var storeType = reflect.TypeOf(Store{})

func hasStore(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type == storeType {
			return true
		}
	}
	return false
}
