package typeshape

// Signature describes a callable: an ordered parameter list and one result
// descriptor, optionally marked async. An async signature's result describes
// the resolved value; the async flag stands in for the wrapper.
type Signature struct {
	params []Descriptor
	result Descriptor
	async  bool
}

func (s *Signature) Kind() Kind { return KindSignature }

// NewSignature builds a synchronous signature. Use sig.Promisify for the
// async variant.
func NewSignature(params []Descriptor, result Descriptor) *Signature {
	cp := make([]Descriptor, len(params))
	copy(cp, params)
	return &Signature{params: cp, result: result}
}

// NewAsyncSignature builds a signature whose result is implicitly wrapped.
func NewAsyncSignature(params []Descriptor, result Descriptor) *Signature {
	s := NewSignature(params, result)
	s.async = true
	return s
}

// Arity reports the number of parameters.
func (s *Signature) Arity() int { return len(s.params) }

// Params returns a copy of the parameter list.
func (s *Signature) Params() []Descriptor {
	out := make([]Descriptor, len(s.params))
	copy(out, s.params)
	return out
}

// Result returns the declared result descriptor. For async signatures this
// is the resolved value; callers that want to look through the wrapper
// explicitly should use sig.Awaited.
func (s *Signature) Result() Descriptor { return s.result }

// Async reports whether the result is implicitly wrapped.
func (s *Signature) Async() bool { return s.async }
