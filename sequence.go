package typeshape

// Tuple describes an ordered, fixed-arity sequence of descriptors. Arity is
// part of the tuple's identity: a two-element tuple is never equal to a
// three-element one regardless of element shapes.
type Tuple struct {
	elems []Descriptor
}

func (t *Tuple) Kind() Kind { return KindTuple }

// NewTuple builds a fixed sequence from elems. A zero-arity tuple is valid;
// several transforms in package seq produce it as their best-effort result.
func NewTuple(elems ...Descriptor) *Tuple {
	cp := make([]Descriptor, len(elems))
	copy(cp, elems)
	return &Tuple{elems: cp}
}

// Len reports the tuple's arity.
func (t *Tuple) Len() int { return len(t.elems) }

// Elements returns a copy of the element list.
func (t *Tuple) Elements() []Descriptor {
	out := make([]Descriptor, len(t.elems))
	copy(out, t.elems)
	return out
}

// At returns the element at position i.
func (t *Tuple) At(i int) (Descriptor, bool) {
	if i < 0 || i >= len(t.elems) {
		return nil, false
	}
	return t.elems[i], true
}

// Array describes an unbounded ordered sequence with a single element shape.
type Array struct {
	elem Descriptor
}

func (a *Array) Kind() Kind { return KindArray }

// NewArray builds an open sequence of elem.
func NewArray(elem Descriptor) *Array { return &Array{elem: elem} }

// Elem returns the element descriptor.
func (a *Array) Elem() Descriptor { return a.elem }
