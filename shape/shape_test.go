package shape_test

import (
	"testing"

	typeshape "github.com/ryzmae/typeshape"
	"github.com/ryzmae/typeshape/shape"
)

func user() *typeshape.Record {
	return typeshape.MustRecord(
		typeshape.Field{Name: "id", Value: typeshape.String(), Readonly: true},
		typeshape.Field{Name: "name", Value: typeshape.String()},
		typeshape.Field{Name: "age", Value: typeshape.Number(), Optional: true},
		typeshape.Field{Name: "email", Value: typeshape.String()},
	)
}

func TestPick_KeepsExactlyTheKeysAndTriples(t *testing.T) {
	r, err := shape.Pick(user(), "id", "age")
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("expected 2 fields, got %d", r.Len())
	}
	id, _ := r.Field("id")
	if !id.Readonly {
		t.Fatalf("pick must keep the readonly flag")
	}
	age, _ := r.Field("age")
	if !age.Optional || !typeshape.Equal(age.Value, typeshape.Number()) {
		t.Fatalf("pick must keep the descriptor and optional flag")
	}
}

func TestPick_RejectsUnknownKeyAtDefinitionTime(t *testing.T) {
	_, err := shape.Pick(user(), "name", "nickname")
	if err == nil {
		t.Fatalf("expected unknown_key error, got nil")
	}
	iss, _ := typeshape.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != typeshape.CodeUnknownKey {
		t.Fatalf("expected a single unknown_key issue, got %v", err)
	}
}

func TestOmit_IsPickOfComplement(t *testing.T) {
	r := user()
	omitted := shape.Omit(r, "age", "email")
	picked, err := shape.Pick(r, "id", "name")
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if !typeshape.Equal(omitted, picked) {
		t.Fatalf("omit(r, K) must equal pick(r, fields minus K)")
	}
	// unknown keys are ignored: omit's complement is always a valid key set
	if !typeshape.Equal(shape.Omit(r, "nope"), r) {
		t.Fatalf("omitting an unknown key should be a no-op")
	}
}

func TestMerge_IsRightBiased(t *testing.T) {
	a := typeshape.MustRecord(
		typeshape.Field{Name: "name", Value: typeshape.String()},
		typeshape.Field{Name: "age", Value: typeshape.Number()},
	)
	b := typeshape.MustRecord(
		typeshape.Field{Name: "age", Value: typeshape.Number(), Optional: true},
		typeshape.Field{Name: "email", Value: typeshape.String()},
	)
	m := shape.Merge(a, b)
	want := []string{"name", "age", "email"}
	got := m.Names()
	if len(got) != len(want) {
		t.Fatalf("expected fields %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected fields %v, got %v", want, got)
		}
	}
	age, _ := m.Field("age")
	if !age.Optional {
		t.Fatalf("overlapping fields must take the right side's triple")
	}
}

func TestDiffAndIntersect_CompareNamesOnly(t *testing.T) {
	a := user()
	b := typeshape.MustRecord(
		// same names, deliberately different shapes: Diff/Intersect look at names only
		typeshape.Field{Name: "id", Value: typeshape.Number()},
		typeshape.Field{Name: "email", Value: typeshape.Number()},
	)
	d := shape.Diff(a, b)
	if d.Has("id") || d.Has("email") || !d.Has("name") || !d.Has("age") {
		t.Fatalf("diff should keep only names absent from b, got %v", d.Names())
	}
	i := shape.Intersect(a, b)
	if !i.Has("id") || !i.Has("email") || i.Len() != 2 {
		t.Fatalf("intersect should keep names present in both, got %v", i.Names())
	}
	id, _ := i.Field("id")
	if !typeshape.Equal(id.Value, typeshape.String()) {
		t.Fatalf("intersect must keep a's triple")
	}
}

func TestOptionalize_FlipsExactlyTheKeys(t *testing.T) {
	r, err := shape.Optionalize(user(), "name")
	if err != nil {
		t.Fatalf("optionalize: %v", err)
	}
	name, _ := r.Field("name")
	email, _ := r.Field("email")
	if !name.Optional || email.Optional {
		t.Fatalf("only the named keys should flip")
	}
	if _, err := shape.Optionalize(user(), "nickname"); err == nil {
		t.Fatalf("expected unknown_key error")
	}
}

func TestRequiredOnly_InvertsTheRest(t *testing.T) {
	r, err := shape.RequiredOnly(user(), "id")
	if err != nil {
		t.Fatalf("requiredOnly: %v", err)
	}
	for _, f := range r.Fields() {
		wantOptional := f.Name != "id"
		if f.Optional != wantOptional {
			t.Fatalf("field %s: optional=%v, want %v", f.Name, f.Optional, wantOptional)
		}
	}
}

func TestRename_MovesTripleAndKeepsPosition(t *testing.T) {
	r, err := shape.Rename(user(), "name", "fullName")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if r.Has("name") {
		t.Fatalf("source name should be gone")
	}
	if got := r.Names()[1]; got != "fullName" {
		t.Fatalf("renamed field should keep its position, got %v", r.Names())
	}
}

func TestRename_CollisionIsAnError(t *testing.T) {
	_, err := shape.Rename(user(), "name", "email")
	if err == nil {
		t.Fatalf("expected name_conflict error, got nil")
	}
	iss, _ := typeshape.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != typeshape.CodeNameConflict {
		t.Fatalf("expected name_conflict, got %v", err)
	}
}

func TestRenameMany_AppliesAgainstOriginalFieldSet(t *testing.T) {
	// a->b and b->c against {a,b}: the first rename must not observe the second's
	// result, and a swap is legal because both sources vacate their names.
	r := typeshape.MustRecord(
		typeshape.Field{Name: "a", Value: typeshape.String()},
		typeshape.Field{Name: "b", Value: typeshape.Number()},
	)
	out, err := shape.RenameMany(r, map[string]string{"a": "b", "b": "a"})
	if err != nil {
		t.Fatalf("swap rename: %v", err)
	}
	aField, _ := out.Field("a")
	if !typeshape.Equal(aField.Value, typeshape.Number()) {
		t.Fatalf("swap should move b's triple under a")
	}
}

func TestRenameMany_DetectsTargetCollisions(t *testing.T) {
	r := typeshape.MustRecord(
		typeshape.Field{Name: "a", Value: typeshape.String()},
		typeshape.Field{Name: "b", Value: typeshape.Number()},
		typeshape.Field{Name: "c", Value: typeshape.Number()},
	)
	if _, err := shape.RenameMany(r, map[string]string{"a": "c"}); err == nil {
		t.Fatalf("renaming onto a surviving field must fail")
	}
	if _, err := shape.RenameMany(r, map[string]string{"a": "x", "b": "x"}); err == nil {
		t.Fatalf("two sources mapping onto one target must fail")
	}
}
