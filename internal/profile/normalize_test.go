package profile

import (
	"reflect"
	"testing"
)

func TestNormalizeEnum(t *testing.T) {
	// "Fair" is the value of one option and the label of another, so it
	// resolves differently depending on which match runs first.
	ambiguous := []Option{
		{Value: "fair", Label: "Light"},
		{Value: "light", Label: "Fair"},
	}

	tests := []struct {
		name    string
		val     any
		options []Option
		want    string
	}{
		{"exact value", "Hindu", ReligionOptions, "Hindu"},
		{"case-insensitive value", "hindu", ReligionOptions, "Hindu"},
		{"label match", "Non Manglik", MangalikOptions, "non_manglik"},
		{"value wins over label", "Fair", ambiguous, "fair"},
		{"unknown string", "whatever", ReligionOptions, ""},
		{"bool true on yes/no table", true, NRIStatusOptions, "true"},
		{"bool false on yes/no table", false, NRIStatusOptions, "false"},
		{"yes label resolves", "Yes", NRIStatusOptions, "true"},
		{"bool on non-bool table", true, ReligionOptions, ""},
		{"nil", nil, ReligionOptions, ""},
		{"number", 42.0, ReligionOptions, ""},
		{"empty string", "", ReligionOptions, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeEnum(tt.val, tt.options); got != tt.want {
				t.Errorf("NormalizeEnum(%v) = %q, want %q", tt.val, got, tt.want)
			}
		})
	}
}

func TestNormalizeMangalik(t *testing.T) {
	tests := []struct {
		val  any
		want string
	}{
		{"manglik", "manglik"},
		{"Manglik", "manglik"},
		{"non_manglik", "non_manglik"},
		{"Non manglik", "non_manglik"},
		{"NON-MANGLIK", "non_manglik"},
		{"partial manglik", "partial_manglik"},
		{"Partial Manglik (to confirm)", "partial_manglik"},
		{"is manglik", "manglik"},
		{"unknown", "unknown"},
		{"", ""},
		{"no idea", ""},
		{nil, ""},
		{true, ""},
	}
	for _, tt := range tests {
		if got := NormalizeMangalik(tt.val); got != tt.want {
			t.Errorf("NormalizeMangalik(%v) = %q, want %q", tt.val, got, tt.want)
		}
	}
}

// Every normalized enum leaf must land inside its declared vocabulary (or be
// empty), no matter how hostile the input record is.
func TestNormalizeTotality(t *testing.T) {
	records := []*RawUserRecord{
		nil,
		{},
		{
			Gender:        123.0,
			Religion:      true,
			Caste:         "no such caste",
			MaritalStatus: []any{"x"},
			Mangalik:      "dunno",
			Hobbies:       map[string]any{"bad": "shape"},
		},
	}
	for _, raw := range records {
		state := Normalize(raw)
		user, err := state.Section(SectionUser)
		if err != nil {
			t.Fatalf("Section(user) failed: %v", err)
		}
		checks := []struct {
			field   string
			options []Option
		}{
			{"gender", GenderOptions},
			{"religion", ReligionOptions},
			{"caste", CasteOptions},
			{"marital_status", MaritalStatusOptions},
			{"mangalik", MangalikOptions},
		}
		for _, c := range checks {
			v, ok := user[c.field].(string)
			if !ok {
				t.Fatalf("field %q missing or not a string", c.field)
			}
			if !ValidOption(v, c.options) {
				t.Errorf("field %q = %q is outside its vocabulary", c.field, v)
			}
		}
	}
}

func TestNormalizeFillsAllKeys(t *testing.T) {
	state := Normalize(&RawUserRecord{Name: "Asha"})

	wantUserKeys := []string{
		"name", "email", "mobile", "gender", "dob", "height", "religion",
		"caste", "marital_status", "mangalik", "language", "hobbies",
		"birth_details", "physical_attributes", "lifestyle", "location",
		"profile_pictures",
	}
	user, _ := state.Section(SectionUser)
	for _, k := range wantUserKeys {
		if _, ok := user[k]; !ok {
			t.Errorf("user section missing key %q", k)
		}
	}

	loc, ok := user["location"].(Tree)
	if !ok {
		t.Fatal("location is not a nested tree")
	}
	for _, k := range []string{"address", "city", "pincode"} {
		if _, ok := loc[k]; !ok {
			t.Errorf("location missing key %q", k)
		}
	}

	if photos := state.Photos(); photos == nil {
		t.Error("profile_pictures should be an empty list, not nil")
	}

	for _, sec := range Sections() {
		tree, err := state.Section(sec)
		if err != nil {
			t.Fatalf("Section(%s) failed: %v", sec, err)
		}
		if tree == nil {
			t.Errorf("section %s has no tree", sec)
		}
	}
}

func TestNormalizeHobbies(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want string
	}{
		{"list", []any{"Reading", "Cricket"}, "Reading, Cricket"},
		{"string passthrough", "Reading, Cricket", "Reading, Cricket"},
		{"absent", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := Normalize(&RawUserRecord{Hobbies: tt.val})
			if got := state.Leaf(SectionUser, "hobbies"); got != tt.want {
				t.Errorf("hobbies = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitHobbies(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Reading, Cricket", []string{"Reading", "Cricket"}},
		{" Reading ,, Cricket , ", []string{"Reading", "Cricket"}},
		{"", []string{}},
		{" , ,", []string{}},
		{"Solo", []string{"Solo"}},
	}
	for _, tt := range tests {
		if got := SplitHobbies(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitHobbies(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeSiblingCounts(t *testing.T) {
	state := Normalize(&RawUserRecord{
		Family: &RawFamily{
			Siblings: &RawSiblings{BrotherCount: 2.0, SisterCount: "3"},
		},
	})
	fam, _ := state.Section(SectionFamily)
	siblings, ok := fam["siblings"].(Tree)
	if !ok {
		t.Fatal("siblings is not a nested tree")
	}
	if siblings["brother_count"] != 2 {
		t.Errorf("brother_count = %v, want 2", siblings["brother_count"])
	}
	if siblings["sister_count"] != 3 {
		t.Errorf("sister_count = %v, want 3", siblings["sister_count"])
	}
}
