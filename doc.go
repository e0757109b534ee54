package typeshape

// Package typeshape provides:
//
// - An immutable descriptor model for value shapes (Primitive/Record/Tuple/
//   Array/Union/Signature/Tagged plus Any/Unknown/Never)
// - Structural equality and subsumption (Equal/Subsumes/IsExact) as the
//   primitives every transform family builds on
// - A stable definition-time error model via Issues (path, code, message)
// - A JSON/YAML wire codec for descriptor documents
//
// Design policy:
// - Keep the descriptor model and shared primitives in the root package; put
//   transform families under shape/, deep/, seq/, union/ and sig/.
// - Two error policies coexist and are deliberate: constructors and
//   key-addressed transforms reject bad inputs at definition time with
//   Issues, while path- and position-addressed lookups degrade to empty
//   results or (Descriptor, bool) without ever raising.
// - Descriptors are never mutated; every derivation returns a new value.
//
// Typical usage:
//
//	user := typeshape.MustRecord(
//		typeshape.Field{Name: "id", Value: typeshape.Brand(typeshape.String(), "UserID")},
//		typeshape.Field{Name: "name", Value: typeshape.String()},
//	)
//	public, err := shape.Pick(user, "name")
//	paths := deep.Keys(user)
