package typeexpr

// IsOptional reports whether e admits absence: either e is Absent itself or
// e is a union where any alternative (recursively) admits absence. Wider
// unions than the canonical {T, Absent} shape still report true here even
// though UnwrapOptional leaves them untouched.
func IsOptional(e Expr) bool {
	switch et := e.(type) {
	case Absent:
		return true
	case Union:
		for _, a := range et.Alts {
			if IsOptional(a) {
				return true
			}
		}
	}
	return false
}

// UnwrapOptional strips a single optional layer: a union of exactly two
// alternatives whose second alternative is Absent unwraps to the first.
// Unions of any other shape or arity, and non-union expressions, are
// returned unchanged.
func UnwrapOptional(e Expr) Expr {
	if !IsOptional(e) {
		return e
	}

	u, ok := e.(Union)
	if !ok || len(u.Alts) != 2 {
		return e
	}
	if _, ok := u.Alts[1].(Absent); !ok {
		return e
	}

	return u.Alts[0]
}

// Unwrap resolves the effective payload type of a declared type expression:
// one deferred layer is stripped if present, then one optional layer. Each
// step runs exactly once; nested wrappers beyond one layer of each are left
// in place.
func Unwrap(e Expr) Expr {
	if d, ok := e.(Deferred); ok {
		e = d.Elem
	}
	return UnwrapOptional(e)
}
