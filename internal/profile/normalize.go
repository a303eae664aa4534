package profile

import (
	"strings"
)

// Normalize maps a raw backend record onto a fully-populated EditableState.
// It is total: any input, including one with every nested object missing and
// every enumerated field holding junk, yields a state with all expected keys
// present. Unresolvable enum values become "" and the console renders its
// "Select" placeholder; nothing is ever rejected here.
func Normalize(raw *RawUserRecord) *EditableState {
	if raw == nil {
		raw = &RawUserRecord{}
	}

	state := &EditableState{}

	birth := raw.BirthDetails
	if birth == nil {
		birth = &RawBirthDetails{}
	}
	phys := raw.PhysicalAttributes
	if phys == nil {
		phys = &RawPhysicalAttributes{}
	}
	life := raw.Lifestyle
	if life == nil {
		life = &RawLifestyle{}
	}
	loc := raw.Location
	if loc == nil {
		loc = &RawLocation{}
	}

	photos := raw.ProfilePictures
	if photos == nil {
		photos = []string{}
	}

	state.setSection(SectionUser, Tree{
		"name":           raw.Name,
		"email":          raw.Email,
		"mobile":         raw.Mobile,
		"gender":         NormalizeEnum(raw.Gender, GenderOptions),
		"dob":            raw.DOB,
		"height":         raw.Height,
		"religion":       NormalizeEnum(raw.Religion, ReligionOptions),
		"caste":          NormalizeEnum(raw.Caste, CasteOptions),
		"marital_status": NormalizeEnum(raw.MaritalStatus, MaritalStatusOptions),
		"mangalik":       NormalizeMangalik(raw.Mangalik),
		"language":       raw.Language,
		"hobbies":        hobbiesEditString(raw.Hobbies),
		"birth_details": Tree{
			"birth_time":  birth.BirthTime,
			"birth_place": birth.BirthPlace,
		},
		"physical_attributes": Tree{
			"skin_tone":           NormalizeEnum(phys.SkinTone, SkinToneOptions),
			"body_type":           NormalizeEnum(phys.BodyType, BodyTypeOptions),
			"physical_disability": NormalizeEnum(phys.PhysicalDisability, PhysicalDisabilityOptions),
			"disability_reason":   phys.DisabilityReason,
		},
		"lifestyle": Tree{
			"smoke":      NormalizeEnum(life.Smoke, SmokeOptions),
			"drink":      NormalizeEnum(life.Drink, DrinkOptions),
			"veg_nonveg": NormalizeEnum(life.VegNonveg, VegNonvegOptions),
			"nri_status": NormalizeEnum(life.NRIStatus, NRIStatusOptions),
		},
		"location": Tree{
			"address": loc.Address,
			"city":    loc.City,
			"pincode": loc.Pincode,
		},
		"profile_pictures": photos,
	})

	astro := raw.Astrology
	if astro == nil {
		astro = &RawAstrology{}
	}
	state.setSection(SectionAstrology, Tree{
		"rashi_nakshatra": astro.RashiNakshatra,
		"gotra":           astro.Gotra,
	})

	edu := raw.Education
	if edu == nil {
		edu = &RawEducation{}
	}
	school := edu.SchoolDetails
	if school == nil {
		school = &RawSchoolDetails{}
	}
	college := edu.CollegeDetails
	if college == nil {
		college = &RawCollegeDetails{}
	}
	state.setSection(SectionEducation, Tree{
		"education_level": NormalizeEnum(edu.EducationLevel, EducationLevelOptions),
		"education_field": NormalizeEnum(edu.EducationField, EducationFieldOptions),
		"school_details": Tree{
			"name": school.Name,
			"city": school.City,
		},
		"college_details": Tree{
			"name":         college.Name,
			"city":         college.City,
			"passout_year": college.PassoutYear,
		},
	})

	fam := raw.Family
	if fam == nil {
		fam = &RawFamily{}
	}
	mother := fam.Mother
	if mother == nil {
		mother = &RawParent{}
	}
	father := fam.Father
	if father == nil {
		father = &RawParent{}
	}
	siblings := fam.Siblings
	if siblings == nil {
		siblings = &RawSiblings{}
	}
	state.setSection(SectionFamily, Tree{
		"family_value": NormalizeEnum(fam.FamilyValue, FamilyValueOptions),
		"family_type":  NormalizeEnum(fam.FamilyType, FamilyTypeOptions),
		"mother": Tree{
			"name":       mother.Name,
			"occupation": mother.Occupation,
		},
		"father": Tree{
			"name":       father.Name,
			"occupation": father.Occupation,
		},
		"siblings": Tree{
			"brother_count": coerceCount(siblings.BrotherCount),
			"sister_count":  coerceCount(siblings.SisterCount),
		},
	})

	prof := raw.Profession
	if prof == nil {
		prof = &RawProfession{}
	}
	work := prof.WorkAddress
	if work == nil {
		work = &RawWorkAddress{}
	}
	state.setSection(SectionProfession, Tree{
		"occupation": prof.Occupation,
		"work_address": Tree{
			"address": work.Address,
			"city":    work.City,
		},
	})

	return state
}

// NormalizeEnum resolves a loosely-typed value against a closed option set.
// Literal booleans are coerced to "true"/"false" first, so they resolve via
// the ordinary value match on boolean-like tables. Resolution order after
// that: case-insensitive match on an option value, then on an option label,
// then "" (unset). A value match always wins over a label match, even when
// the input coincides with another option's label.
func NormalizeEnum(val any, options []Option) string {
	var s string
	switch v := val.(type) {
	case string:
		s = v
	case bool:
		if v {
			s = "true"
		} else {
			s = "false"
		}
	default:
		return ""
	}
	lower := strings.ToLower(s)
	for _, opt := range options {
		if strings.ToLower(opt.Value) == lower {
			return opt.Value
		}
	}
	for _, opt := range options {
		if strings.ToLower(opt.Label) == lower {
			return opt.Value
		}
	}
	return ""
}

// NormalizeMangalik resolves the mangalik field. On top of the standard
// value/label matching it applies keyword heuristics for the free-text
// variants old records carry ("Non manglik", "partial manglik please
// confirm", ...). Order matters: "non" and "partial" are checked before the
// bare "manglik" substring, which both of them contain.
func NormalizeMangalik(val any) string {
	if resolved := NormalizeEnum(val, MangalikOptions); resolved != "" {
		return resolved
	}
	s, ok := val.(string)
	if !ok {
		return ""
	}
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "non"):
		return "non_manglik"
	case strings.Contains(lower, "partial"):
		return "partial_manglik"
	case strings.Contains(lower, "manglik"):
		return "manglik"
	}
	return ""
}

// hobbiesEditString converts the stored hobbies value into the comma-joined
// edit representation. Stored form may be a list, already-joined text, or
// absent.
func hobbiesEditString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

// SplitHobbies converts the comma-joined edit representation back into the
// wire list: entries trimmed, empties dropped, order preserved.
func SplitHobbies(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func coerceCount(val any) int {
	switch v := val.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		n := 0
		for _, r := range v {
			if r < '0' || r > '9' {
				return 0
			}
			n = n*10 + int(r-'0')
		}
		return n
	}
	return 0
}
