package swatch

import "testing"

// Verify at compile time that GoFontResolver implements FontResolver.
var _ FontResolver = (*GoFontResolver)(nil)

func TestGoFontResolver_Roles(t *testing.T) {
	r := &GoFontResolver{}
	for _, role := range []FontRole{RoleTitle, RoleName, RoleLabel} {
		face, err := r.Resolve(role, 16)
		if err != nil {
			t.Fatalf("Resolve(%v) error: %v", role, err)
		}
		if face == nil {
			t.Fatalf("Resolve(%v) returned nil face", role)
		}
		if got := face.Size(); got != 16 {
			t.Errorf("Resolve(%v) size = %v, want 16", role, got)
		}
	}
}

func TestGoFontResolver_CachesSources(t *testing.T) {
	r := &GoFontResolver{}
	a, err := r.Resolve(RoleLabel, 12)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Resolve(RoleName, 20)
	if err != nil {
		t.Fatal(err)
	}
	if a.Source() != b.Source() {
		t.Error("label and name faces should share one parsed font source")
	}
	title, err := r.Resolve(RoleTitle, 20)
	if err != nil {
		t.Fatal(err)
	}
	if title.Source() == a.Source() {
		t.Error("title face should use the bold source, not the regular one")
	}
}
