package typeshape

import (
	json "github.com/goccy/go-json"
)

// EncodeJSON serializes d into the wire document form.
func EncodeJSON(d Descriptor) ([]byte, error) {
	return json.Marshal(toWire(d))
}

// EncodeJSONIndent is EncodeJSON with two-space indentation, for documents
// meant to be read or diffed by humans.
func EncodeJSONIndent(d Descriptor) ([]byte, error) {
	return json.MarshalIndent(toWire(d), "", "  ")
}

// DecodeJSON parses a wire document back into a descriptor. Decoding runs
// through the public constructors, so invariant violations in the document
// (duplicate record fields, empty unions) surface as Issues.
func DecodeJSON(data []byte) (Descriptor, error) {
	var n wireNode
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	d, iss := fromWire(&n, "")
	if len(iss) > 0 {
		return nil, iss
	}
	return d, nil
}
