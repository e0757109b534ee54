package typeshape

// Guard predicates: boolean, total, side-effect-free checks over a single
// descriptor. They never allocate and never fail.

// IsNever reports whether d is the uninhabited descriptor.
func IsNever(d Descriptor) bool { return d != nil && d.Kind() == KindNever }

// IsAny reports whether d is the checking escape hatch.
func IsAny(d Descriptor) bool { return d != nil && d.Kind() == KindAny }

// IsUnknown reports whether d is the maximally unconstrained descriptor.
// Unlike IsAny this is true only for Unknown itself.
func IsUnknown(d Descriptor) bool { return d != nil && d.Kind() == KindUnknown }

// IsTuple reports whether d is a fixed-arity sequence. Open sequences
// (arrays) do not count.
func IsTuple(d Descriptor) bool { return d != nil && d.Kind() == KindTuple }

// IsLiteral reports whether d is an exact-value primitive. Boolean literals
// are excluded: true|false is just boolean, not a meaningful narrowing.
func IsLiteral(d Descriptor) bool {
	p, ok := d.(*Primitive)
	if !ok || !p.isLit {
		return false
	}
	return p.name != nameBoolean
}

// IsExact reports mutual structural subsumption: a accepts b's shape and b
// accepts a's. This is weaker than Equal for descriptors that differ only in
// representation (for example nested single-member unions) and is the
// primitive the union transforms build on.
func IsExact(a, b Descriptor) bool {
	return Subsumes(a, b) && Subsumes(b, a)
}
