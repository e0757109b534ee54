package typeshape

// Union describes "one of" a set of member descriptors. Members are
// deduplicated by structural equality at construction; first-occurrence
// order is kept for iteration but carries no semantic weight.
type Union struct {
	members []Descriptor
}

func (u *Union) Kind() Kind { return KindUnion }

// NewUnion builds an alternative from members. An empty member set is a
// definition-time error; duplicates are dropped.
func NewUnion(members ...Descriptor) (*Union, error) {
	if len(members) == 0 {
		return nil, Issues{Issue{
			Path:    "/members",
			Code:    CodeEmptyUnion,
			Message: "union requires at least one member",
		}}
	}
	out := make([]Descriptor, 0, len(members))
	for _, m := range members {
		dup := false
		for _, seen := range out {
			if Equal(seen, m) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, m)
		}
	}
	return &Union{members: out}, nil
}

// MustUnion is NewUnion for statically known member sets; it panics on an
// empty set.
func MustUnion(members ...Descriptor) *Union {
	u, err := NewUnion(members...)
	if err != nil {
		panic(err)
	}
	return u
}

// Len reports the number of distinct members.
func (u *Union) Len() int { return len(u.members) }

// Members returns a copy of the member list in first-occurrence order.
func (u *Union) Members() []Descriptor {
	out := make([]Descriptor, len(u.members))
	copy(out, u.members)
	return out
}

// Has reports whether d is structurally present among the members.
func (u *Union) Has(d Descriptor) bool {
	for _, m := range u.members {
		if Equal(m, d) {
			return true
		}
	}
	return false
}
