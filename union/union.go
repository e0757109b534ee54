// Package union implements set algebra over the members of Union
// descriptors: difference, overlap, symmetric difference, member-wise
// filtering, record merging and discriminated-union construction. Structural
// equality decides membership throughout.
package union

import (
	"sort"
	"strconv"

	typeshape "github.com/ryzmae/typeshape"
)

// Diff returns the members of a not structurally present in b. Removing
// every member yields Never; a single survivor is returned bare.
func Diff(a, b *typeshape.Union) typeshape.Descriptor {
	kept := make([]typeshape.Descriptor, 0, a.Len())
	for _, m := range a.Members() {
		if !b.Has(m) {
			kept = append(kept, m)
		}
	}
	return fromMembers(kept)
}

// Overlap returns the members of a structurally present in b.
func Overlap(a, b *typeshape.Union) typeshape.Descriptor {
	kept := make([]typeshape.Descriptor, 0, a.Len())
	for _, m := range a.Members() {
		if b.Has(m) {
			kept = append(kept, m)
		}
	}
	return fromMembers(kept)
}

// Exclusive returns the symmetric difference: members in exactly one of the
// two inputs, a's survivors first.
func Exclusive(a, b *typeshape.Union) typeshape.Descriptor {
	kept := make([]typeshape.Descriptor, 0, a.Len()+b.Len())
	for _, m := range a.Members() {
		if !b.Has(m) {
			kept = append(kept, m)
		}
	}
	for _, m := range b.Members() {
		if !a.Has(m) {
			kept = append(kept, m)
		}
	}
	return fromMembers(kept)
}

// Merge combines every member into one record, right-biased in member
// order. A member that is not record-shaped is a definition-time error.
func Merge(u *typeshape.Union) (*typeshape.Record, error) {
	var iss typeshape.Issues
	fields := make([]typeshape.Field, 0)
	index := make(map[string]int)
	for i, m := range u.Members() {
		r, ok := m.(*typeshape.Record)
		if !ok {
			iss = typeshape.AppendIssues(iss, typeshape.Issue{
				Path:    "/members/" + strconv.Itoa(i),
				Code:    typeshape.CodeNotRecord,
				Message: "merge requires every member to be a record",
				Hint:    "got " + m.Kind().String(),
			})
			continue
		}
		for _, f := range r.Fields() {
			if at, seen := index[f.Name]; seen {
				fields[at] = f
				continue
			}
			index[f.Name] = len(fields)
			fields = append(fields, f)
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return typeshape.NewRecord(fields...)
}

// Filter keeps the members that pred accepts (pred subsumes the member).
func Filter(u *typeshape.Union, pred typeshape.Descriptor) typeshape.Descriptor {
	kept := make([]typeshape.Descriptor, 0, u.Len())
	for _, m := range u.Members() {
		if typeshape.Subsumes(pred, m) {
			kept = append(kept, m)
		}
	}
	return fromMembers(kept)
}

// Reject drops the members that pred accepts; the mirror of Filter.
func Reject(u *typeshape.Union, pred typeshape.Descriptor) typeshape.Descriptor {
	kept := make([]typeshape.Descriptor, 0, u.Len())
	for _, m := range u.Members() {
		if !typeshape.Subsumes(pred, m) {
			kept = append(kept, m)
		}
	}
	return fromMembers(kept)
}

// ToTuple materializes the members into a fixed sequence in declaration
// order.
func ToTuple(u *typeshape.Union) *typeshape.Tuple {
	return typeshape.NewTuple(u.Members()...)
}

// IsUnion reports whether d is an alternative with at least two distinct
// members after normalization. Single-member unions and non-union
// descriptors are not "real" alternatives.
func IsUnion(d typeshape.Descriptor) bool {
	u, ok := d.(*typeshape.Union)
	return ok && u.Len() >= 2
}

// Discriminated builds a union of record variants, stamping each with a
// literal tag field so that the variants stay distinguishable by value.
// Member order follows the sorted tag order for determinism. A variant that
// already declares the discriminator field is a definition-time conflict.
func Discriminated(field string, variants map[string]*typeshape.Record) (*typeshape.Union, error) {
	tags := make([]string, 0, len(variants))
	for tag := range variants {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	var iss typeshape.Issues
	members := make([]typeshape.Descriptor, 0, len(tags))
	for _, tag := range tags {
		v := variants[tag]
		if v.Has(field) {
			iss = typeshape.AppendIssues(iss, typeshape.Issue{
				Path:    "/variants/" + tag + "/" + field,
				Code:    typeshape.CodeNameConflict,
				Message: "variant already declares the discriminator field",
			})
			continue
		}
		stamped := append([]typeshape.Field{{Name: field, Value: typeshape.Literal(tag)}}, v.Fields()...)
		members = append(members, typeshape.MustRecord(stamped...))
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return typeshape.NewUnion(members...)
}

func fromMembers(members []typeshape.Descriptor) typeshape.Descriptor {
	switch len(members) {
	case 0:
		return typeshape.Never()
	case 1:
		return members[0]
	}
	return typeshape.MustUnion(members...)
}
