package typeshape

import (
	"gopkg.in/yaml.v3"
)

// EncodeYAML serializes d into the YAML rendering of the wire document form.
func EncodeYAML(d Descriptor) ([]byte, error) {
	return yaml.Marshal(toWire(d))
}

// DecodeYAML parses a YAML wire document back into a descriptor, with the
// same constructor-enforced invariants as DecodeJSON. YAML is the authoring
// format; integers in literal values are normalized to the number primitive's
// float64 representation so the two formats stay interchangeable.
func DecodeYAML(data []byte) (Descriptor, error) {
	var n wireNode
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	d, iss := fromWire(&n, "")
	if len(iss) > 0 {
		return nil, iss
	}
	return d, nil
}
