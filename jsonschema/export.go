package jsonschema

import (
	"strconv"

	typeshape "github.com/ryzmae/typeshape"
)

// FromDescriptor projects a descriptor into its JSON Schema rendering.
// Tagged descriptors project as their base: branding is a definition-time
// discipline and JSON Schema has no nominal layer to carry it. Signatures
// describe callables, which JSON Schema cannot express; projecting one is a
// definition-time error.
func FromDescriptor(d typeshape.Descriptor) (*Schema, error) {
	out, iss := fromDescriptor(d, "")
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func fromDescriptor(d typeshape.Descriptor, path string) (*Schema, typeshape.Issues) {
	switch x := d.(type) {
	case *typeshape.Primitive:
		s := &Schema{Type: jsonType(x.Name())}
		if v, ok := x.LiteralValue(); ok {
			s.Const = v
		}
		return s, nil
	case *typeshape.Record:
		s := &Schema{Type: "object", Properties: map[string]*Schema{}}
		var iss typeshape.Issues
		for _, f := range x.Fields() {
			ps, i2 := fromDescriptor(f.Value, path+"/"+f.Name)
			if len(i2) > 0 {
				iss = typeshape.AppendIssues(iss, i2...)
				continue
			}
			if f.Readonly {
				ps.ReadOnly = true
			}
			s.Properties[f.Name] = ps
			if !f.Optional {
				s.Required = append(s.Required, f.Name)
			}
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return s, nil
	case *typeshape.Tuple:
		n := x.Len()
		s := &Schema{Type: "array", MinItems: &n, MaxItems: &n}
		var iss typeshape.Issues
		for i, e := range x.Elements() {
			es, i2 := fromDescriptor(e, path+"/"+strconv.Itoa(i))
			if len(i2) > 0 {
				iss = typeshape.AppendIssues(iss, i2...)
				continue
			}
			s.PrefixItems = append(s.PrefixItems, es)
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return s, nil
	case *typeshape.Array:
		es, iss := fromDescriptor(x.Elem(), path+"/items")
		if len(iss) > 0 {
			return nil, iss
		}
		return &Schema{Type: "array", Items: es}, nil
	case *typeshape.Union:
		s := &Schema{}
		var iss typeshape.Issues
		for i, m := range x.Members() {
			ms, i2 := fromDescriptor(m, path+"/"+strconv.Itoa(i))
			if len(i2) > 0 {
				iss = typeshape.AppendIssues(iss, i2...)
				continue
			}
			s.OneOf = append(s.OneOf, ms)
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return s, nil
	case *typeshape.Tagged:
		return fromDescriptor(x.Base(), path)
	case *typeshape.Signature:
		return nil, typeshape.Issues{typeshape.Issue{
			Path:    path,
			Code:    typeshape.CodeUnsupported,
			Message: "signatures have no JSON Schema form",
		}}
	}
	switch d.Kind() {
	case typeshape.KindAny, typeshape.KindUnknown:
		// the empty schema accepts everything
		return &Schema{}, nil
	case typeshape.KindNever:
		return &Schema{Not: &Schema{}}, nil
	}
	return nil, typeshape.Issues{typeshape.Issue{
		Path:    path,
		Code:    typeshape.CodeInvalidKind,
		Message: "descriptor kind has no JSON Schema form",
	}}
}

func jsonType(name string) string {
	if name == "boolean" {
		return "boolean"
	}
	return name
}
