package typeshape_test

import (
	"testing"

	typeshape "github.com/ryzmae/typeshape"
)

func TestHash_ConsistentWithEqual(t *testing.T) {
	a := typeshape.MustRecord(
		typeshape.Field{Name: "x", Value: typeshape.String()},
		typeshape.Field{Name: "y", Value: typeshape.Number(), Optional: true},
	)
	b := typeshape.MustRecord(
		typeshape.Field{Name: "y", Value: typeshape.Number(), Optional: true},
		typeshape.Field{Name: "x", Value: typeshape.String()},
	)
	if typeshape.Hash(a) != typeshape.Hash(b) {
		t.Fatalf("equal records must hash identically regardless of field order")
	}
	u1 := typeshape.MustUnion(typeshape.String(), typeshape.Number())
	u2 := typeshape.MustUnion(typeshape.Number(), typeshape.String())
	if typeshape.Hash(u1) != typeshape.Hash(u2) {
		t.Fatalf("equal unions must hash identically regardless of member order")
	}
}

func TestHash_DistinguishesBrands(t *testing.T) {
	a := typeshape.Brand(typeshape.String(), "UserID")
	b := typeshape.Brand(typeshape.String(), "ProductID")
	if typeshape.Hash(a) == typeshape.Hash(b) {
		t.Fatalf("different tokens should hash differently")
	}
}

func TestInterner_CanonicalizesEqualDescriptors(t *testing.T) {
	in := typeshape.NewInterner()
	a := typeshape.MustRecord(typeshape.Field{Name: "x", Value: typeshape.String()})
	b := typeshape.MustRecord(typeshape.Field{Name: "x", Value: typeshape.String()})
	if in.Intern(a) != in.Intern(b) {
		t.Fatalf("structurally equal descriptors should intern to one value")
	}
	c := typeshape.MustRecord(typeshape.Field{Name: "x", Value: typeshape.Number()})
	if in.Intern(a) == in.Intern(c) {
		t.Fatalf("distinct descriptors must not be conflated")
	}
}
