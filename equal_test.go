package typeshape_test

import (
	"testing"

	typeshape "github.com/ryzmae/typeshape"
)

func TestEqual_RecordFieldOrderIrrelevant(t *testing.T) {
	a := typeshape.MustRecord(
		typeshape.Field{Name: "x", Value: typeshape.String()},
		typeshape.Field{Name: "y", Value: typeshape.Number()},
	)
	b := typeshape.MustRecord(
		typeshape.Field{Name: "y", Value: typeshape.Number()},
		typeshape.Field{Name: "x", Value: typeshape.String()},
	)
	if !typeshape.Equal(a, b) {
		t.Fatalf("field order must not affect equality")
	}
}

func TestEqual_UnionMemberOrderIrrelevant(t *testing.T) {
	a := typeshape.MustUnion(typeshape.String(), typeshape.Number())
	b := typeshape.MustUnion(typeshape.Number(), typeshape.String())
	if !typeshape.Equal(a, b) {
		t.Fatalf("member order must not affect equality")
	}
}

func TestEqual_FlagsAreSignificant(t *testing.T) {
	a := typeshape.MustRecord(typeshape.Field{Name: "x", Value: typeshape.String()})
	b := typeshape.MustRecord(typeshape.Field{Name: "x", Value: typeshape.String(), Optional: true})
	if typeshape.Equal(a, b) {
		t.Fatalf("optional flag must affect equality")
	}
}

func TestBrand_DifferentTokensNeverCompatible(t *testing.T) {
	userID := typeshape.Brand(typeshape.String(), "UserID")
	productID := typeshape.Brand(typeshape.String(), "ProductID")
	if typeshape.Equal(userID, productID) {
		t.Fatalf("brands with different tokens must not be equal")
	}
	if typeshape.Subsumes(userID, productID) || typeshape.Subsumes(productID, userID) {
		t.Fatalf("brands with different tokens must not subsume each other")
	}
	if typeshape.IsExact(userID, productID) {
		t.Fatalf("brands with different tokens must not be exact")
	}
}

func TestSubsumes_BaseAcceptsBrandButNotReverse(t *testing.T) {
	userID := typeshape.Brand(typeshape.String(), "UserID")
	if !typeshape.Subsumes(typeshape.String(), userID) {
		t.Fatalf("a brand should widen to its base")
	}
	if typeshape.Subsumes(userID, typeshape.String()) {
		t.Fatalf("the untagged base must not coerce into the brand")
	}
}

func TestSubsumes_LiteralNarrowsPrimitive(t *testing.T) {
	if !typeshape.Subsumes(typeshape.String(), typeshape.Literal("on")) {
		t.Fatalf("string should accept the literal \"on\"")
	}
	if typeshape.Subsumes(typeshape.Literal("on"), typeshape.String()) {
		t.Fatalf("a literal must not accept the whole primitive")
	}
}

func TestSubsumes_RecordWidthSubtyping(t *testing.T) {
	wide := typeshape.MustRecord(
		typeshape.Field{Name: "id", Value: typeshape.String()},
		typeshape.Field{Name: "name", Value: typeshape.String()},
	)
	narrow := typeshape.MustRecord(typeshape.Field{Name: "id", Value: typeshape.String()})
	if !typeshape.Subsumes(narrow, wide) {
		t.Fatalf("a record with extra fields should be accepted by the narrower one")
	}
	if typeshape.Subsumes(wide, narrow) {
		t.Fatalf("a record missing a required field must be rejected")
	}
}

func TestSubsumes_UnionDistribution(t *testing.T) {
	u := typeshape.MustUnion(typeshape.String(), typeshape.Number())
	if !typeshape.Subsumes(u, typeshape.String()) {
		t.Fatalf("a union should accept each of its members")
	}
	narrower := typeshape.MustUnion(typeshape.String())
	if !typeshape.Subsumes(u, narrower) {
		t.Fatalf("a union should accept a union of fewer members")
	}
	if typeshape.Subsumes(narrower, u) {
		t.Fatalf("a narrower union must not accept the wider one")
	}
}

func TestSubsumes_TopAndBottom(t *testing.T) {
	s := typeshape.String()
	if !typeshape.Subsumes(typeshape.Unknown(), s) {
		t.Fatalf("unknown should accept everything")
	}
	if typeshape.Subsumes(s, typeshape.Unknown()) {
		t.Fatalf("unknown must not be accepted without narrowing")
	}
	if !typeshape.Subsumes(s, typeshape.Never()) {
		t.Fatalf("never should be accepted everywhere")
	}
	if !typeshape.Subsumes(typeshape.Any(), s) || !typeshape.Subsumes(s, typeshape.Any()) {
		t.Fatalf("any should subsume in both directions")
	}
}

func TestSubsumes_SignatureVariance(t *testing.T) {
	u := typeshape.MustUnion(typeshape.String(), typeshape.Number())
	// (string|number) -> string  accepts callers expecting  string -> (string|number)
	general := typeshape.NewSignature([]typeshape.Descriptor{u}, typeshape.String())
	specific := typeshape.NewSignature([]typeshape.Descriptor{typeshape.String()}, u)
	if !typeshape.Subsumes(specific, general) {
		t.Fatalf("parameters should be contravariant and results covariant")
	}
	if typeshape.Subsumes(general, specific) {
		t.Fatalf("variance must not hold in the opposite direction")
	}
}

func TestIsExact_SeesThroughRepresentation(t *testing.T) {
	single := typeshape.MustUnion(typeshape.String())
	if !typeshape.IsExact(single, typeshape.String()) {
		t.Fatalf("a single-member union is exactly its member")
	}
	if typeshape.Equal(single, typeshape.String()) {
		t.Fatalf("Equal is representational and should distinguish the two")
	}
}
