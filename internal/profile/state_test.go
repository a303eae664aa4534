package profile

import (
	"errors"
	"testing"
)

func TestApplyFieldChangeTopLevel(t *testing.T) {
	state := Normalize(&RawUserRecord{Name: "Asha", Email: "asha@example.com"})

	if err := state.ApplyFieldChange(SectionUser, "name", "Asha Kaur", ""); err != nil {
		t.Fatalf("ApplyFieldChange failed: %v", err)
	}
	if got := state.Leaf(SectionUser, "name"); got != "Asha Kaur" {
		t.Errorf("name = %q, want %q", got, "Asha Kaur")
	}
	if got := state.Leaf(SectionUser, "email"); got != "asha@example.com" {
		t.Errorf("sibling leaf changed: email = %q", got)
	}
}

func TestApplyFieldChangeNested(t *testing.T) {
	state := Normalize(&RawUserRecord{
		Location: &RawLocation{Address: "12 Mall Road", City: "Amritsar"},
	})

	if err := state.ApplyFieldChange(SectionUser, "city", "Ludhiana", "location"); err != nil {
		t.Fatalf("ApplyFieldChange failed: %v", err)
	}
	if got := state.SubLeaf(SectionUser, "location", "city"); got != "Ludhiana" {
		t.Errorf("location.city = %q, want %q", got, "Ludhiana")
	}
	if got := state.SubLeaf(SectionUser, "location", "address"); got != "12 Mall Road" {
		t.Errorf("sibling nested leaf changed: address = %q", got)
	}
}

// A change in one section must not leak into any other section, and a tree
// handed out before the change must keep its old values.
func TestApplyFieldChangeIsolation(t *testing.T) {
	state := Normalize(&RawUserRecord{
		Astrology: &RawAstrology{Gotra: "Bharadwaj"},
	})

	before, _ := state.Section(SectionAstrology)
	otherBefore, _ := state.Section(SectionFamily)

	if err := state.ApplyFieldChange(SectionAstrology, "gotra", "Kashyap", ""); err != nil {
		t.Fatalf("ApplyFieldChange failed: %v", err)
	}

	if before["gotra"] != "Bharadwaj" {
		t.Errorf("previously handed-out tree mutated: gotra = %v", before["gotra"])
	}
	after, _ := state.Section(SectionAstrology)
	if after["gotra"] != "Kashyap" {
		t.Errorf("gotra = %v, want Kashyap", after["gotra"])
	}
	if otherAfter, _ := state.Section(SectionFamily); otherAfter["family_type"] != otherBefore["family_type"] {
		t.Error("untouched section changed")
	}
	if err := state.ApplyFieldChange(SectionFamily, "family_type", "Joint", ""); err != nil {
		t.Fatalf("ApplyFieldChange failed: %v", err)
	}
	if got := state.Leaf(SectionAstrology, "gotra"); got != "Kashyap" {
		t.Errorf("astrology change lost after family change: gotra = %q", got)
	}
}

func TestApplyFieldChangeInvalidSection(t *testing.T) {
	state := Normalize(nil)
	err := state.ApplyFieldChange(Section(99), "name", "x", "")
	if !errors.Is(err, ErrInvalidSection) {
		t.Errorf("expected ErrInvalidSection, got %v", err)
	}
	if _, err := state.Section(Section(-1)); !errors.Is(err, ErrInvalidSection) {
		t.Errorf("expected ErrInvalidSection, got %v", err)
	}
}

func TestSetPhotos(t *testing.T) {
	state := Normalize(nil)
	state.SetPhotos([]string{"https://cdn.example.com/a.jpg"})
	if got := state.Photos(); len(got) != 1 || got[0] != "https://cdn.example.com/a.jpg" {
		t.Errorf("Photos() = %v", got)
	}
	state.SetPhotos(nil)
	if got := state.Photos(); got == nil || len(got) != 0 {
		t.Errorf("Photos() after nil set = %v, want empty list", got)
	}
}

func TestSectionString(t *testing.T) {
	if SectionAstrology.String() != "astrology" {
		t.Errorf("String() = %q", SectionAstrology.String())
	}
	if Section(42).Valid() {
		t.Error("Section(42) should be invalid")
	}
}
