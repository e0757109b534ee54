package typeshape

// Kind identifies a descriptor variant. The variant set is closed; transforms
// dispatch by switching on Kind rather than via interface methods so that the
// compiler can check exhaustiveness-by-convention in one place per operation.
type Kind int

const (
	KindPrimitive Kind = iota
	KindRecord
	KindTuple
	KindArray
	KindUnion
	KindSignature
	KindTagged
	KindAny
	KindUnknown
	KindNever
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindRecord:
		return "record"
	case KindTuple:
		return "tuple"
	case KindArray:
		return "array"
	case KindUnion:
		return "union"
	case KindSignature:
		return "signature"
	case KindTagged:
		return "tagged"
	case KindAny:
		return "any"
	case KindUnknown:
		return "unknown"
	case KindNever:
		return "never"
	}
	return "invalid"
}
