// Package shape implements flat transforms over Record descriptors:
// pick/omit/merge/diff/intersect plus flag and name rewrites. Key-addressed
// operations reject unknown keys at definition time; set-algebra operations
// are total.
package shape

import (
	typeshape "github.com/ryzmae/typeshape"
)

// Pick returns a record containing exactly the named fields, each keeping its
// original descriptor and flags. A key absent from r is a definition-time
// error.
func Pick(r *typeshape.Record, keys ...string) (*typeshape.Record, error) {
	if iss := requireKeys(r, keys); len(iss) > 0 {
		return nil, iss
	}
	keep := keySet(keys)
	fields := make([]typeshape.Field, 0, len(keys))
	for _, f := range r.Fields() {
		if _, ok := keep[f.Name]; ok {
			fields = append(fields, f)
		}
	}
	return mustRebuild(fields), nil
}

// Omit returns a record without the named fields. Keys absent from r are
// ignored: Omit(r, k) is Pick(r, fields(r) minus k), and the complement is
// always a valid key set.
func Omit(r *typeshape.Record, keys ...string) *typeshape.Record {
	drop := keySet(keys)
	fields := make([]typeshape.Field, 0, r.Len())
	for _, f := range r.Fields() {
		if _, ok := drop[f.Name]; !ok {
			fields = append(fields, f)
		}
	}
	return mustRebuild(fields)
}

// Merge combines two records right-biased: the result declares every field
// of a and b, and where names overlap b's descriptor and flags win. Nested
// records are not merged recursively.
func Merge(a, b *typeshape.Record) *typeshape.Record {
	fields := make([]typeshape.Field, 0, a.Len()+b.Len())
	for _, f := range a.Fields() {
		if bf, ok := b.Field(f.Name); ok {
			f = bf
		}
		fields = append(fields, f)
	}
	for _, f := range b.Fields() {
		if !a.Has(f.Name) {
			fields = append(fields, f)
		}
	}
	return mustRebuild(fields)
}

// Diff returns the fields of a whose names are absent from b. Only names are
// compared; field shapes play no part.
func Diff(a, b *typeshape.Record) *typeshape.Record {
	fields := make([]typeshape.Field, 0, a.Len())
	for _, f := range a.Fields() {
		if !b.Has(f.Name) {
			fields = append(fields, f)
		}
	}
	return mustRebuild(fields)
}

// Intersect returns the fields present in both records by name, keeping a's
// descriptor and flags.
func Intersect(a, b *typeshape.Record) *typeshape.Record {
	fields := make([]typeshape.Field, 0, a.Len())
	for _, f := range a.Fields() {
		if b.Has(f.Name) {
			fields = append(fields, f)
		}
	}
	return mustRebuild(fields)
}

// Optionalize flips the optional flag to true for exactly the named fields.
// A key absent from r is a definition-time error.
func Optionalize(r *typeshape.Record, keys ...string) (*typeshape.Record, error) {
	if iss := requireKeys(r, keys); len(iss) > 0 {
		return nil, iss
	}
	mark := keySet(keys)
	fields := r.Fields()
	for i := range fields {
		if _, ok := mark[fields[i].Name]; ok {
			fields[i].Optional = true
		}
	}
	return mustRebuild(fields), nil
}

// RequiredOnly makes exactly the named fields required and every other field
// optional. A key absent from r is a definition-time error.
func RequiredOnly(r *typeshape.Record, keys ...string) (*typeshape.Record, error) {
	if iss := requireKeys(r, keys); len(iss) > 0 {
		return nil, iss
	}
	keep := keySet(keys)
	fields := r.Fields()
	for i := range fields {
		_, req := keep[fields[i].Name]
		fields[i].Optional = !req
	}
	return mustRebuild(fields), nil
}

// Rename moves field from to name to, keeping descriptor and flags and the
// field's position. A missing source or an already-declared target is a
// definition-time error; there is no silent no-op on collision.
func Rename(r *typeshape.Record, from, to string) (*typeshape.Record, error) {
	return RenameMany(r, map[string]string{from: to})
}

// RenameMany applies a from-to mapping against r's original field set: later
// renames never observe earlier results. Unknown sources, targets colliding
// with surviving fields, and two sources mapping onto one target are all
// definition-time errors.
func RenameMany(r *typeshape.Record, mapping map[string]string) (*typeshape.Record, error) {
	var iss typeshape.Issues
	targets := make(map[string]string, len(mapping))
	for from, to := range mapping {
		if !r.Has(from) {
			iss = typeshape.AppendIssues(iss, typeshape.Issue{
				Path:    "/fields/" + from,
				Code:    typeshape.CodeUnknownKey,
				Message: "rename source is not a field",
			})
			continue
		}
		if prev, dup := targets[to]; dup {
			iss = typeshape.AppendIssues(iss, typeshape.Issue{
				Path:    "/fields/" + to,
				Code:    typeshape.CodeNameConflict,
				Message: "two renames target the same name",
				Hint:    "sources '" + prev + "' and '" + from + "'",
			})
			continue
		}
		targets[to] = from
		if _, renamedAway := mapping[to]; r.Has(to) && !renamedAway {
			iss = typeshape.AppendIssues(iss, typeshape.Issue{
				Path:    "/fields/" + to,
				Code:    typeshape.CodeNameConflict,
				Message: "rename target already declared",
			})
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	fields := r.Fields()
	for i := range fields {
		if to, ok := mapping[fields[i].Name]; ok {
			fields[i].Name = to
		}
	}
	return typeshape.NewRecord(fields...)
}

func keySet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// requireKeys implements the definition-time rejection policy shared by the
// key-addressed transforms.
func requireKeys(r *typeshape.Record, keys []string) typeshape.Issues {
	var iss typeshape.Issues
	for _, k := range keys {
		if !r.Has(k) {
			iss = typeshape.AppendIssues(iss, typeshape.Issue{
				Path:    "/fields/" + k,
				Code:    typeshape.CodeUnknownKey,
				Message: "key is not a field of the record",
			})
		}
	}
	return iss
}

// mustRebuild reassembles fields that came out of a valid record and so
// cannot collide.
func mustRebuild(fields []typeshape.Field) *typeshape.Record {
	return typeshape.MustRecord(fields...)
}
