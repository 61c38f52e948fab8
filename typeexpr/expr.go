// Package typeexpr models declared property types as an explicit
// type-descriptor algebra.
//
// A declared type is at most one layer of deferred-value wrapping around at
// most one layer of optionality around a concrete payload type. Optionality
// is represented structurally as a two-alternative union whose second
// alternative is Absent.
package typeexpr

import (
	"reflect"
	"strings"
)

// Expr is a declared type expression. The concrete implementations are
// Plain, Absent, Deferred and Union.
type Expr interface {
	isExpr()
	String() string
}

// Plain is a concrete payload type.
type Plain struct {
	Type reflect.Type
}

// Absent is the explicit absent-type alternative of an optional union.
type Absent struct{}

// Deferred is a single-argument deferred-value wrapper around its element.
type Deferred struct {
	Elem Expr
}

// Union is an n-ary union of alternatives. Construct through NewUnion so
// nested unions are flattened and duplicates removed.
type Union struct {
	Alts []Expr
}

func (Plain) isExpr()    {}
func (Absent) isExpr()   {}
func (Deferred) isExpr() {}
func (Union) isExpr()    {}

func (p Plain) String() string {
	if p.Type == nil {
		return "<nil>"
	}
	return p.Type.String()
}

func (Absent) String() string { return "absent" }

func (d Deferred) String() string {
	return "deferred[" + exprString(d.Elem) + "]"
}

func (u Union) String() string {
	if len(u.Alts) == 2 {
		if _, ok := u.Alts[1].(Absent); ok {
			return "optional[" + exprString(u.Alts[0]) + "]"
		}
	}

	parts := make([]string, len(u.Alts))
	for i, a := range u.Alts {
		parts[i] = exprString(a)
	}
	return "union[" + strings.Join(parts, ", ") + "]"
}

func exprString(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}

// NewUnion builds a union from the given alternatives. Nested unions are
// flattened and duplicate alternatives dropped, keeping first occurrences.
// A union of a single alternative collapses to that alternative.
func NewUnion(alts ...Expr) Expr {
	var flat []Expr

	var add func(e Expr)
	add = func(e Expr) {
		if u, ok := e.(Union); ok {
			for _, a := range u.Alts {
				add(a)
			}
			return
		}
		for _, seen := range flat {
			if Equal(seen, e) {
				return
			}
		}
		flat = append(flat, e)
	}

	for _, a := range alts {
		add(a)
	}

	if len(flat) == 1 {
		return flat[0]
	}
	return Union{Alts: flat}
}

// Optional wraps e in the two-alternative optional union {e, Absent}.
// Optional of an already-optional expression collapses to a single layer.
func Optional(e Expr) Expr {
	return NewUnion(e, Absent{})
}

// DeferredOf wraps e in one deferred-value layer.
func DeferredOf(e Expr) Expr {
	return Deferred{Elem: e}
}

// Equal reports structural equality of two expressions.
func Equal(a, b Expr) bool {
	switch at := a.(type) {
	case nil:
		return b == nil
	case Plain:
		bt, ok := b.(Plain)
		return ok && at.Type == bt.Type
	case Absent:
		_, ok := b.(Absent)
		return ok
	case Deferred:
		bt, ok := b.(Deferred)
		return ok && Equal(at.Elem, bt.Elem)
	case Union:
		bt, ok := b.(Union)
		if !ok || len(at.Alts) != len(bt.Alts) {
			return false
		}
		for i := range at.Alts {
			if !Equal(at.Alts[i], bt.Alts[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Elemer is implemented by runtime deferred-value containers so the scanner
// can see through them to the payload type.
type Elemer interface {
	ElemType() reflect.Type
}

var elemerType = reflect.TypeOf((*Elemer)(nil)).Elem()

// FromReflectType converts a Go type into a type expression.
//
// Concrete types implementing Elemer (directly or through their pointer)
// become a Deferred layer around their element. Interface types stay Plain
// even when they include Elemer in their method set: there is no concrete
// value to ask for the element. Pointer types become Optional of their
// element, since a pointer field is the idiomatic "may be absent"
// declaration. Everything else is Plain.
func FromReflectType(t reflect.Type) Expr {
	if t == nil {
		return Absent{}
	}

	if t.Kind() != reflect.Interface && t.Implements(elemerType) {
		inst := t
		if inst.Kind() == reflect.Ptr {
			inst = inst.Elem()
		}
		elem := reflect.New(inst).Interface().(Elemer).ElemType()
		return Deferred{Elem: FromReflectType(elem)}
	}

	if t.Kind() != reflect.Ptr && t.Kind() != reflect.Interface &&
		reflect.PointerTo(t).Implements(elemerType) {
		elem := reflect.New(t).Interface().(Elemer).ElemType()
		return Deferred{Elem: FromReflectType(elem)}
	}

	if t.Kind() == reflect.Ptr {
		return Optional(FromReflectType(t.Elem()))
	}

	return Plain{Type: t}
}
