package typeshape_test

import (
	"testing"

	typeshape "github.com/ryzmae/typeshape"
)

func TestGuards_KindPredicates(t *testing.T) {
	if !typeshape.IsNever(typeshape.Never()) || typeshape.IsNever(typeshape.String()) {
		t.Fatalf("IsNever misclassified")
	}
	if !typeshape.IsAny(typeshape.Any()) || typeshape.IsAny(typeshape.Unknown()) {
		t.Fatalf("IsAny misclassified")
	}
	if !typeshape.IsUnknown(typeshape.Unknown()) || typeshape.IsUnknown(typeshape.Any()) {
		t.Fatalf("IsUnknown must be true only for unknown, not any")
	}
}

func TestIsTuple_OpenSequencesExcluded(t *testing.T) {
	if !typeshape.IsTuple(typeshape.NewTuple(typeshape.String())) {
		t.Fatalf("fixed sequences are tuples")
	}
	if typeshape.IsTuple(typeshape.NewArray(typeshape.String())) {
		t.Fatalf("open sequences are not tuples")
	}
}

func TestIsLiteral_BooleansExcluded(t *testing.T) {
	if !typeshape.IsLiteral(typeshape.Literal("on")) || !typeshape.IsLiteral(typeshape.Literal(2)) {
		t.Fatalf("string and number literals are literals")
	}
	if typeshape.IsLiteral(typeshape.Literal(true)) {
		t.Fatalf("boolean literals are excluded")
	}
	if typeshape.IsLiteral(typeshape.String()) {
		t.Fatalf("bare primitives are not literals")
	}
}
