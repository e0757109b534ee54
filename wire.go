package typeshape

import "strconv"

// wireNode is the serialized form of a descriptor: a tagged tree with a
// "kind" discriminator. The same struct serves both the JSON and the YAML
// codec so documents can round-trip between the two formats.
type wireNode struct {
	Kind     string      `json:"kind" yaml:"kind"`
	Name     string      `json:"name,omitempty" yaml:"name,omitempty"`
	Value    any         `json:"value,omitempty" yaml:"value,omitempty"`
	Literal  bool        `json:"literal,omitempty" yaml:"literal,omitempty"`
	Fields   []wireField `json:"fields,omitempty" yaml:"fields,omitempty"`
	Elements []*wireNode `json:"elements,omitempty" yaml:"elements,omitempty"`
	Element  *wireNode   `json:"element,omitempty" yaml:"element,omitempty"`
	Members  []*wireNode `json:"members,omitempty" yaml:"members,omitempty"`
	Params   []*wireNode `json:"params,omitempty" yaml:"params,omitempty"`
	Result   *wireNode   `json:"result,omitempty" yaml:"result,omitempty"`
	Async    bool        `json:"async,omitempty" yaml:"async,omitempty"`
	Token    string      `json:"token,omitempty" yaml:"token,omitempty"`
	Base     *wireNode   `json:"base,omitempty" yaml:"base,omitempty"`
}

type wireField struct {
	Name     string    `json:"name" yaml:"name"`
	Schema   *wireNode `json:"schema" yaml:"schema"`
	Optional bool      `json:"optional,omitempty" yaml:"optional,omitempty"`
	Readonly bool      `json:"readonly,omitempty" yaml:"readonly,omitempty"`
}

func toWire(d Descriptor) *wireNode {
	if d == nil {
		return nil
	}
	n := &wireNode{Kind: d.Kind().String()}
	switch x := d.(type) {
	case *Primitive:
		n.Name = x.name
		if x.isLit {
			n.Literal = true
			n.Value = x.literal
		}
	case *Record:
		n.Fields = make([]wireField, 0, len(x.fields))
		for _, f := range x.fields {
			n.Fields = append(n.Fields, wireField{
				Name:     f.Name,
				Schema:   toWire(f.Value),
				Optional: f.Optional,
				Readonly: f.Readonly,
			})
		}
	case *Tuple:
		n.Elements = make([]*wireNode, 0, len(x.elems))
		for _, e := range x.elems {
			n.Elements = append(n.Elements, toWire(e))
		}
	case *Array:
		n.Element = toWire(x.elem)
	case *Union:
		n.Members = make([]*wireNode, 0, len(x.members))
		for _, m := range x.members {
			n.Members = append(n.Members, toWire(m))
		}
	case *Signature:
		n.Params = make([]*wireNode, 0, len(x.params))
		for _, p := range x.params {
			n.Params = append(n.Params, toWire(p))
		}
		n.Result = toWire(x.result)
		n.Async = x.async
	case *Tagged:
		n.Token = x.token
		n.Base = toWire(x.base)
	}
	return n
}

// fromWire rebuilds a descriptor through the public constructors so that
// loaded documents honor the same definition-time invariants as descriptors
// built in code.
func fromWire(n *wireNode, path string) (Descriptor, Issues) {
	if n == nil {
		return nil, Issues{Issue{Path: path, Code: CodeParseError, Message: "missing node"}}
	}
	switch n.Kind {
	case "primitive", "string", "number", "boolean", "null":
		return primitiveFromWire(n, path)
	case "record":
		fields := make([]Field, 0, len(n.Fields))
		var iss Issues
		for i, wf := range n.Fields {
			fv, i2 := fromWire(wf.Schema, path+"/fields/"+strconv.Itoa(i))
			if len(i2) > 0 {
				iss = AppendIssues(iss, i2...)
				continue
			}
			fields = append(fields, Field{Name: wf.Name, Value: fv, Optional: wf.Optional, Readonly: wf.Readonly})
		}
		if len(iss) > 0 {
			return nil, iss
		}
		r, err := NewRecord(fields...)
		if err != nil {
			return nil, rebase(err, path)
		}
		return r, nil
	case "tuple":
		elems := make([]Descriptor, 0, len(n.Elements))
		var iss Issues
		for i, we := range n.Elements {
			e, i2 := fromWire(we, path+"/elements/"+strconv.Itoa(i))
			if len(i2) > 0 {
				iss = AppendIssues(iss, i2...)
				continue
			}
			elems = append(elems, e)
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return NewTuple(elems...), nil
	case "array":
		if n.Element == nil {
			return nil, Issues{Issue{Path: path + "/element", Code: CodeParseError, Message: "array requires an element"}}
		}
		e, iss := fromWire(n.Element, path+"/element")
		if len(iss) > 0 {
			return nil, iss
		}
		return NewArray(e), nil
	case "union":
		members := make([]Descriptor, 0, len(n.Members))
		var iss Issues
		for i, wm := range n.Members {
			m, i2 := fromWire(wm, path+"/members/"+strconv.Itoa(i))
			if len(i2) > 0 {
				iss = AppendIssues(iss, i2...)
				continue
			}
			members = append(members, m)
		}
		if len(iss) > 0 {
			return nil, iss
		}
		u, err := NewUnion(members...)
		if err != nil {
			return nil, rebase(err, path)
		}
		return u, nil
	case "signature":
		params := make([]Descriptor, 0, len(n.Params))
		var iss Issues
		for i, wp := range n.Params {
			p, i2 := fromWire(wp, path+"/params/"+strconv.Itoa(i))
			if len(i2) > 0 {
				iss = AppendIssues(iss, i2...)
				continue
			}
			params = append(params, p)
		}
		if n.Result == nil {
			iss = AppendIssues(iss, Issue{Path: path + "/result", Code: CodeParseError, Message: "signature requires a result"})
		}
		if len(iss) > 0 {
			return nil, iss
		}
		res, i2 := fromWire(n.Result, path+"/result")
		if len(i2) > 0 {
			return nil, i2
		}
		if n.Async {
			return NewAsyncSignature(params, res), nil
		}
		return NewSignature(params, res), nil
	case "tagged":
		if n.Base == nil {
			return nil, Issues{Issue{Path: path + "/base", Code: CodeParseError, Message: "tagged requires a base"}}
		}
		base, iss := fromWire(n.Base, path+"/base")
		if len(iss) > 0 {
			return nil, iss
		}
		return Brand(base, n.Token), nil
	case "any":
		return Any(), nil
	case "unknown":
		return Unknown(), nil
	case "never":
		return Never(), nil
	}
	return nil, Issues{Issue{Path: path, Code: CodeInvalidKind, Message: "unknown kind", Hint: "got '" + n.Kind + "'"}}
}

func primitiveFromWire(n *wireNode, path string) (Descriptor, Issues) {
	name := n.Name
	if n.Kind != "primitive" {
		// shorthand form: kind names the primitive directly
		name = n.Kind
	}
	if n.Literal || n.Value != nil {
		switch n.Value.(type) {
		case string, bool, int, int32, int64, float32, float64:
			return Literal(n.Value), nil
		}
		return nil, Issues{Issue{Path: path, Code: CodeParseError, Message: "literal value must be a string, boolean or number"}}
	}
	switch name {
	case nameString:
		return String(), nil
	case nameNumber:
		return Number(), nil
	case nameBoolean:
		return Boolean(), nil
	case nameNull:
		return Null(), nil
	}
	return nil, Issues{Issue{Path: path, Code: CodeInvalidKind, Message: "unknown primitive", Hint: "got '" + name + "'"}}
}

// rebase prefixes constructor issues with the wire path they arose under.
func rebase(err error, base string) Issues {
	child, ok := AsIssues(err)
	if !ok {
		return Issues{Issue{Path: base, Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	out := make(Issues, 0, len(child))
	for _, it := range child {
		p := it.Path
		if p == "" || p == "/" {
			p = base
		} else if p[0] == '/' {
			p = base + p
		} else {
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}
