package property

import (
	"property-mapper/typeexpr"
)

type missingType struct{}

func (missingType) String() string { return "<missing>" }

// Missing is the sentinel reported as a descriptor default when none was
// supplied. It is distinct from every legal value, including nil.
var Missing any = missingType{}

// Descriptor describes a single declared field: its wire name, its default
// value and its declared type. Descriptors are immutable once created.
type Descriptor struct {
	wireName string
	def      any
	typ      typeexpr.Expr
}

// DescOption configures a Descriptor at construction.
type DescOption func(*Descriptor)

// Default sets the descriptor's default value.
func Default(v any) DescOption {
	return func(d *Descriptor) { d.def = v }
}

// OfType sets the descriptor's declared type expression. Registration fills
// this in from the field declaration when not set explicitly.
func OfType(e typeexpr.Expr) DescOption {
	return func(d *Descriptor) { d.typ = e }
}

// New creates a descriptor for the given wire name. Supply it through
// WithDescriptor when a field's wire name differs from its in-memory name.
func New(name string, opts ...DescOption) (Descriptor, error) {
	if name == "" {
		return Descriptor{}, ErrMissingName
	}

	d := Descriptor{wireName: name, def: Missing}
	for _, opt := range opts {
		opt(&d)
	}
	return d, nil
}

// WireName reports the external field identifier.
func (d Descriptor) WireName() string { return d.wireName }

// Default reports the default value, or Missing when none was supplied.
func (d Descriptor) Default() any { return d.def }

// HasDefault reports whether a default value was supplied.
func (d Descriptor) HasDefault() bool {
	_, missing := d.def.(missingType)
	return !missing
}

// Type reports the declared type expression, nil when unknown.
func (d Descriptor) Type() typeexpr.Expr { return d.typ }

func (d Descriptor) withType(e typeexpr.Expr) Descriptor {
	d.typ = e
	return d
}
