package typeshape

// Field is one named entry of a Record: a descriptor plus its optional and
// readonly flags. Fields are plain values; a Record copies them on
// construction and on access, so holding a Field never aliases a Record.
type Field struct {
	Name     string
	Value    Descriptor
	Optional bool
	Readonly bool
}

// Record describes a mapping of named fields. Field order is the insertion
// order given at construction and is preserved for iteration and display;
// structural equality ignores it.
type Record struct {
	fields []Field
	index  map[string]int
}

func (r *Record) Kind() Kind { return KindRecord }

// NewRecord builds a Record from fields. A duplicate field name is a
// definition-time error.
func NewRecord(fields ...Field) (*Record, error) {
	r := &Record{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	var iss Issues
	for _, f := range fields {
		if _, dup := r.index[f.Name]; dup {
			iss = AppendIssues(iss, Issue{
				Path:    "/fields/" + f.Name,
				Code:    CodeDuplicateField,
				Message: "field declared twice",
			})
			continue
		}
		r.index[f.Name] = len(r.fields)
		r.fields = append(r.fields, f)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return r, nil
}

// MustRecord is NewRecord for statically known field sets; it panics on a
// duplicate name.
func MustRecord(fields ...Field) *Record {
	r, err := NewRecord(fields...)
	if err != nil {
		panic(err)
	}
	return r
}

// Len reports the number of fields.
func (r *Record) Len() int { return len(r.fields) }

// Fields returns a copy of the field list in declaration order.
func (r *Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Field looks up a field by name.
func (r *Record) Field(name string) (Field, bool) {
	i, ok := r.index[name]
	if !ok {
		return Field{}, false
	}
	return r.fields[i], true
}

// Has reports whether the record declares the named field.
func (r *Record) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Names returns the field names in declaration order.
func (r *Record) Names() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.Name
	}
	return out
}
