// Package seq implements structural operations over fixed-arity Tuple
// descriptors. The whole family follows one best-effort policy: extractions
// on an empty tuple report (nil, false), arity-shrinking operations on an
// empty tuple return the empty tuple, and searches miss with a -1 sentinel.
// Nothing here ever returns an error.
package seq

import (
	typeshape "github.com/ryzmae/typeshape"
)

// Head returns the first element, or (nil, false) on a zero-arity tuple.
func Head(t *typeshape.Tuple) (typeshape.Descriptor, bool) {
	return t.At(0)
}

// Last returns the final element, or (nil, false) on a zero-arity tuple.
func Last(t *typeshape.Tuple) (typeshape.Descriptor, bool) {
	return t.At(t.Len() - 1)
}

// Tail returns t without its first element; the empty tuple maps to itself.
func Tail(t *typeshape.Tuple) *typeshape.Tuple {
	if t.Len() == 0 {
		return typeshape.NewTuple()
	}
	return typeshape.NewTuple(t.Elements()[1:]...)
}

// Init returns t without its last element; the empty tuple maps to itself.
func Init(t *typeshape.Tuple) *typeshape.Tuple {
	if t.Len() == 0 {
		return typeshape.NewTuple()
	}
	return typeshape.NewTuple(t.Elements()[:t.Len()-1]...)
}

// Push appends d, growing arity by one.
func Push(t *typeshape.Tuple, d typeshape.Descriptor) *typeshape.Tuple {
	return typeshape.NewTuple(append(t.Elements(), d)...)
}

// Pop drops the last element, shrinking arity by one. Popping the empty
// tuple returns the empty tuple.
func Pop(t *typeshape.Tuple) *typeshape.Tuple { return Init(t) }

// Unshift prepends d, growing arity by one.
func Unshift(t *typeshape.Tuple, d typeshape.Descriptor) *typeshape.Tuple {
	return typeshape.NewTuple(append([]typeshape.Descriptor{d}, t.Elements()...)...)
}

// Shift drops the first element, shrinking arity by one. Shifting the empty
// tuple returns the empty tuple.
func Shift(t *typeshape.Tuple) *typeshape.Tuple { return Tail(t) }

// Concat joins two tuples; arity is the sum of the inputs'.
func Concat(a, b *typeshape.Tuple) *typeshape.Tuple {
	return typeshape.NewTuple(append(a.Elements(), b.Elements()...)...)
}

// Reverse returns t's elements in reverse order.
func Reverse(t *typeshape.Tuple) *typeshape.Tuple {
	elems := t.Elements()
	for i, j := 0, len(elems)-1; i < j; i, j = i+1, j-1 {
		elems[i], elems[j] = elems[j], elems[i]
	}
	return typeshape.NewTuple(elems...)
}

// At returns the element at position i, or (nil, false) out of range.
func At(t *typeshape.Tuple, i int) (typeshape.Descriptor, bool) {
	return t.At(i)
}

// Includes reports whether d structurally matches at least one element.
func Includes(t *typeshape.Tuple, d typeshape.Descriptor) bool {
	return IndexOf(t, d) >= 0
}

// IndexOf returns the first position whose element structurally equals d,
// or -1 when no element matches.
func IndexOf(t *typeshape.Tuple, d typeshape.Descriptor) int {
	for i, e := range t.Elements() {
		if typeshape.Equal(e, d) {
			return i
		}
	}
	return -1
}

// ToUnion collapses the tuple into an alternative of its element
// descriptors, deduplicated; element order carries no meaning afterwards.
// The empty tuple has no members to offer, which is the one definition-time
// error in this package.
func ToUnion(t *typeshape.Tuple) (*typeshape.Union, error) {
	return typeshape.NewUnion(t.Elements()...)
}
