// Package deep implements recursive transforms over nested Record
// descriptors, addressed by dot-separated paths. Unlike the flat transforms
// in package shape, path-based operations are permissive by design: an
// unresolvable path degrades to an empty result, the input unchanged, or a
// false marker, never an error. Recursion terminates at non-Record
// descriptors; tuples and arrays pass through unchanged.
package deep

import (
	"strings"

	typeshape "github.com/ryzmae/typeshape"
)

// Pick narrows r to the named dot-paths. Every path keeps its full chain of
// intermediate records, each narrowed to the picked branch; a path with an
// unresolvable segment contributes nothing. Multiple paths are merged.
func Pick(r *typeshape.Record, paths ...string) *typeshape.Record {
	out := typeshape.MustRecord()
	for _, p := range paths {
		out = mergeNarrowed(out, pickPath(r, strings.Split(p, ".")))
	}
	return out
}

func pickPath(r *typeshape.Record, segs []string) *typeshape.Record {
	empty := typeshape.MustRecord()
	if len(segs) == 0 {
		return empty
	}
	f, ok := r.Field(segs[0])
	if !ok {
		return empty
	}
	if len(segs) == 1 {
		return typeshape.MustRecord(f)
	}
	sub, ok := f.Value.(*typeshape.Record)
	if !ok {
		return empty
	}
	narrowed := pickPath(sub, segs[1:])
	if narrowed.Len() == 0 {
		return empty
	}
	f.Value = narrowed
	return typeshape.MustRecord(f)
}

// mergeNarrowed deep-merges two pick results. Both sides are narrowed views
// of the same record, so overlapping fields either agree or are both
// records; record pairs merge recursively, anything else is taken from b.
func mergeNarrowed(a, b *typeshape.Record) *typeshape.Record {
	fields := make([]typeshape.Field, 0, a.Len()+b.Len())
	for _, f := range a.Fields() {
		if bf, ok := b.Field(f.Name); ok {
			ar, aok := f.Value.(*typeshape.Record)
			br, bok := bf.Value.(*typeshape.Record)
			if aok && bok {
				bf.Value = mergeNarrowed(ar, br)
			}
			f = bf
		}
		fields = append(fields, f)
	}
	for _, f := range b.Fields() {
		if !a.Has(f.Name) {
			fields = append(fields, f)
		}
	}
	return typeshape.MustRecord(fields...)
}

// Omit removes the leaf field named by the final path segment, leaving
// siblings and the path structure intact. Single-segment paths behave like
// the flat omit; an unresolvable path returns r unchanged.
func Omit(r *typeshape.Record, path string) *typeshape.Record {
	return omitPath(r, strings.Split(path, "."))
}

func omitPath(r *typeshape.Record, segs []string) *typeshape.Record {
	if len(segs) == 0 {
		return r
	}
	f, ok := r.Field(segs[0])
	if !ok {
		return r
	}
	if len(segs) == 1 {
		fields := make([]typeshape.Field, 0, r.Len()-1)
		for _, g := range r.Fields() {
			if g.Name != segs[0] {
				fields = append(fields, g)
			}
		}
		return typeshape.MustRecord(fields...)
	}
	sub, ok := f.Value.(*typeshape.Record)
	if !ok {
		return r
	}
	rebuilt := omitPath(sub, segs[1:])
	if rebuilt == sub {
		return r
	}
	fields := r.Fields()
	for i := range fields {
		if fields[i].Name == segs[0] {
			fields[i].Value = rebuilt
		}
	}
	return typeshape.MustRecord(fields...)
}

// Partial flips every field at every nesting depth to optional.
func Partial(r *typeshape.Record) *typeshape.Record {
	return mapFields(r, func(f typeshape.Field) typeshape.Field {
		f.Optional = true
		return f
	})
}

// Required flips every field at every nesting depth to required.
func Required(r *typeshape.Record) *typeshape.Record {
	return mapFields(r, func(f typeshape.Field) typeshape.Field {
		f.Optional = false
		return f
	})
}

// Readonly marks every field at every nesting depth readonly.
func Readonly(r *typeshape.Record) *typeshape.Record {
	return mapFields(r, func(f typeshape.Field) typeshape.Field {
		f.Readonly = true
		return f
	})
}

// Mutable clears the readonly flag at every nesting depth.
func Mutable(r *typeshape.Record) *typeshape.Record {
	return mapFields(r, func(f typeshape.Field) typeshape.Field {
		f.Readonly = false
		return f
	})
}

// mapFields applies fn to every field of r and, recursively, of every
// nested record. Non-record field values are left as they are; the flag
// flip still applies to the field that holds them.
func mapFields(r *typeshape.Record, fn func(typeshape.Field) typeshape.Field) *typeshape.Record {
	fields := r.Fields()
	for i := range fields {
		fields[i] = fn(fields[i])
		if sub, ok := fields[i].Value.(*typeshape.Record); ok {
			fields[i].Value = mapFields(sub, fn)
		}
	}
	return typeshape.MustRecord(fields...)
}

// NonNullable strips the null variant from every leaf and forces every level
// to required. A union that loses all members collapses to Never; a union
// left with one member collapses to that member.
func NonNullable(r *typeshape.Record) *typeshape.Record {
	fields := r.Fields()
	for i := range fields {
		fields[i].Optional = false
		fields[i].Value = stripNull(fields[i].Value)
	}
	return typeshape.MustRecord(fields...)
}

func stripNull(d typeshape.Descriptor) typeshape.Descriptor {
	switch x := d.(type) {
	case *typeshape.Primitive:
		if x.Name() == "null" {
			return typeshape.Never()
		}
	case *typeshape.Union:
		kept := make([]typeshape.Descriptor, 0, x.Len())
		for _, m := range x.Members() {
			s := stripNull(m)
			if !typeshape.IsNever(s) {
				kept = append(kept, s)
			}
		}
		switch len(kept) {
		case 0:
			return typeshape.Never()
		case 1:
			return kept[0]
		}
		return typeshape.MustUnion(kept...)
	case *typeshape.Record:
		return NonNullable(x)
	}
	return d
}

// Keys returns every dot-path reachable from r, intermediate prefixes
// included, in field declaration order.
func Keys(r *typeshape.Record) []string {
	var out []string
	collectKeys(r, "", &out)
	return out
}

func collectKeys(r *typeshape.Record, prefix string, out *[]string) {
	for _, f := range r.Fields() {
		p := f.Name
		if prefix != "" {
			p = prefix + "." + f.Name
		}
		*out = append(*out, p)
		if sub, ok := f.Value.(*typeshape.Record); ok {
			collectKeys(sub, p, out)
		}
	}
}

// Value resolves a dot-path to the descriptor at that position. The false
// return is the unresolved marker: any missing segment, or a segment that
// lands on a non-record before the path ends, yields (nil, false).
func Value(r *typeshape.Record, path string) (typeshape.Descriptor, bool) {
	segs := strings.Split(path, ".")
	cur := r
	for i, seg := range segs {
		f, ok := cur.Field(seg)
		if !ok {
			return nil, false
		}
		if i == len(segs)-1 {
			return f.Value, true
		}
		sub, ok := f.Value.(*typeshape.Record)
		if !ok {
			return nil, false
		}
		cur = sub
	}
	return nil, false
}
