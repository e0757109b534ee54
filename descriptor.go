package typeshape

import "fmt"

// Descriptor is the compile-time-style description of a value's shape,
// reified as immutable runtime data. Descriptors are constructed once and
// never mutated; every transform in this module and its subpackages returns
// a fresh descriptor value.
type Descriptor interface {
	Kind() Kind
}

// Primitive is an atomic descriptor: string, number, boolean or null,
// optionally narrowed to a single exact value (a literal).
type Primitive struct {
	name    string
	literal any
	isLit   bool
}

func (p *Primitive) Kind() Kind { return KindPrimitive }

// Name reports the primitive's base kind name ("string", "number",
// "boolean", "null").
func (p *Primitive) Name() string { return p.name }

// LiteralValue returns the exact value this primitive is narrowed to, if any.
func (p *Primitive) LiteralValue() (any, bool) { return p.literal, p.isLit }

const (
	nameString  = "string"
	nameNumber  = "number"
	nameBoolean = "boolean"
	nameNull    = "null"
)

var (
	primString  = &Primitive{name: nameString}
	primNumber  = &Primitive{name: nameNumber}
	primBoolean = &Primitive{name: nameBoolean}
	primNull    = &Primitive{name: nameNull}

	anySingleton     = &anyType{}
	unknownSingleton = &unknownType{}
	neverSingleton   = &neverType{}
)

// String returns the string primitive descriptor.
func String() *Primitive { return primString }

// Number returns the number primitive descriptor.
func Number() *Primitive { return primNumber }

// Boolean returns the boolean primitive descriptor.
func Boolean() *Primitive { return primBoolean }

// Null returns the null primitive descriptor.
func Null() *Primitive { return primNull }

// Literal returns a primitive narrowed to the exact value v. Supported value
// types are string, bool and the numeric kinds; numbers are normalized to
// float64 so that Literal(1) and Literal(1.0) describe the same shape. Any
// other value is stored by its printed form, keeping the literal comparable
// for Equal and Hash.
func Literal(v any) *Primitive {
	switch x := v.(type) {
	case string:
		return &Primitive{name: nameString, literal: x, isLit: true}
	case bool:
		return &Primitive{name: nameBoolean, literal: x, isLit: true}
	case int:
		return &Primitive{name: nameNumber, literal: float64(x), isLit: true}
	case int32:
		return &Primitive{name: nameNumber, literal: float64(x), isLit: true}
	case int64:
		return &Primitive{name: nameNumber, literal: float64(x), isLit: true}
	case float32:
		return &Primitive{name: nameNumber, literal: float64(x), isLit: true}
	case float64:
		return &Primitive{name: nameNumber, literal: x, isLit: true}
	case nil:
		return primNull
	}
	return &Primitive{name: nameString, literal: fmt.Sprint(v), isLit: true}
}

type anyType struct{}

func (*anyType) Kind() Kind { return KindAny }

type unknownType struct{}

func (*unknownType) Kind() Kind { return KindUnknown }

type neverType struct{}

func (*neverType) Kind() Kind { return KindNever }

// Any returns the maximally permissive descriptor that also disables
// checking (top and bottom at once, in the manner of a checker escape hatch).
func Any() Descriptor { return anySingleton }

// Unknown returns the maximally unconstrained descriptor that still demands
// narrowing before use. It accepts everything but is accepted by nothing
// except itself and Any.
func Unknown() Descriptor { return unknownSingleton }

// Never returns the uninhabited descriptor. It is the result of operations
// whose member set becomes empty, such as a union difference that removes
// every member.
func Never() Descriptor { return neverSingleton }
