package typeshape

// Equal reports structural equality of two descriptors. Record field order
// and union member order are ignored; tuple order, signature parameter order
// and tagged tokens are significant.
func Equal(a, b Descriptor) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Primitive:
		y := b.(*Primitive)
		if x.name != y.name || x.isLit != y.isLit {
			return false
		}
		return !x.isLit || x.literal == y.literal
	case *Record:
		y := b.(*Record)
		if len(x.fields) != len(y.fields) {
			return false
		}
		for _, fa := range x.fields {
			fb, ok := y.Field(fa.Name)
			if !ok || fa.Optional != fb.Optional || fa.Readonly != fb.Readonly {
				return false
			}
			if !Equal(fa.Value, fb.Value) {
				return false
			}
		}
		return true
	case *Tuple:
		y := b.(*Tuple)
		if len(x.elems) != len(y.elems) {
			return false
		}
		for i := range x.elems {
			if !Equal(x.elems[i], y.elems[i]) {
				return false
			}
		}
		return true
	case *Array:
		return Equal(x.elem, b.(*Array).elem)
	case *Union:
		y := b.(*Union)
		if len(x.members) != len(y.members) {
			return false
		}
		for _, m := range x.members {
			if !y.Has(m) {
				return false
			}
		}
		return true
	case *Signature:
		y := b.(*Signature)
		if len(x.params) != len(y.params) || x.async != y.async {
			return false
		}
		for i := range x.params {
			if !Equal(x.params[i], y.params[i]) {
				return false
			}
		}
		return Equal(x.result, y.result)
	case *Tagged:
		y := b.(*Tagged)
		return x.sameToken(y) && Equal(x.base, y.base)
	}
	// any/unknown/never carry no payload; matching kinds suffice.
	return true
}

// Subsumes reports whether a accepts every value that b accepts (structural
// subsumption, b <: a). Any subsumes and is subsumed by everything; Unknown
// subsumes everything; Never is subsumed by everything. Records use width
// subtyping (b may declare extra fields), signatures are contravariant in
// parameters and covariant in result, and a tagged descriptor widens to its
// base but a base never narrows to the brand.
func Subsumes(a, b Descriptor) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Kind() == KindAny || b.Kind() == KindAny {
		return true
	}
	if a.Kind() == KindUnknown {
		return true
	}
	if b.Kind() == KindNever {
		return true
	}
	if a.Kind() == KindNever || b.Kind() == KindUnknown {
		return false
	}
	// Unions distribute before kinds are compared pairwise.
	if ub, ok := b.(*Union); ok {
		for _, m := range ub.members {
			if !Subsumes(a, m) {
				return false
			}
		}
		return true
	}
	if ua, ok := a.(*Union); ok {
		for _, m := range ua.members {
			if Subsumes(m, b) {
				return true
			}
		}
		return false
	}
	// Tagged widens to its base; the reverse coercion is the thing branding
	// exists to forbid.
	if tb, ok := b.(*Tagged); ok {
		if ta, ok := a.(*Tagged); ok {
			return ta.sameToken(tb) && Subsumes(ta.base, tb.base)
		}
		return Subsumes(a, tb.base)
	}
	if a.Kind() == KindTagged {
		return false
	}

	switch x := a.(type) {
	case *Primitive:
		y, ok := b.(*Primitive)
		if !ok || x.name != y.name {
			return false
		}
		if x.isLit {
			return y.isLit && x.literal == y.literal
		}
		return true
	case *Record:
		y, ok := b.(*Record)
		if !ok {
			return false
		}
		for _, fa := range x.fields {
			fb, present := y.Field(fa.Name)
			if !present {
				if fa.Optional {
					continue
				}
				return false
			}
			if !fa.Optional && fb.Optional {
				return false
			}
			if !Subsumes(fa.Value, fb.Value) {
				return false
			}
		}
		return true
	case *Tuple:
		y, ok := b.(*Tuple)
		if !ok || len(x.elems) != len(y.elems) {
			return false
		}
		for i := range x.elems {
			if !Subsumes(x.elems[i], y.elems[i]) {
				return false
			}
		}
		return true
	case *Array:
		switch y := b.(type) {
		case *Array:
			return Subsumes(x.elem, y.elem)
		case *Tuple:
			for _, e := range y.elems {
				if !Subsumes(x.elem, e) {
					return false
				}
			}
			return true
		}
		return false
	case *Signature:
		y, ok := b.(*Signature)
		if !ok || len(x.params) != len(y.params) || x.async != y.async {
			return false
		}
		for i := range x.params {
			if !Subsumes(y.params[i], x.params[i]) {
				return false
			}
		}
		return Subsumes(x.result, y.result)
	}
	return false
}
