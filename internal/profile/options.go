package profile

// Option is one entry of a closed select vocabulary. Value is what gets
// stored and transmitted; Label is what the console displays.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func opts(values ...string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Label: v}
	}
	return out
}

// yesNo covers the boolean-like fields that are persisted as enumerated
// strings ("true"/"false") but rendered as Yes/No selects.
var yesNo = []Option{
	{Value: "true", Label: "Yes"},
	{Value: "false", Label: "No"},
}

var (
	GenderOptions        = opts("Male", "Female")
	ReligionOptions      = opts("Hindu", "Sikh", "Jain", "Buddhist", "Other")
	CasteOptions         = opts("Khatri", "Arora", "Brahmin", "Aggarwal", "Ramgarhia", "Other")
	MaritalStatusOptions = opts("Never Married", "Divorced", "Widowed", "Separated")

	MangalikOptions = []Option{
		{Value: "manglik", Label: "Manglik"},
		{Value: "non_manglik", Label: "Non Manglik"},
		{Value: "partial_manglik", Label: "Partial Manglik"},
		{Value: "unknown", Label: "Unknown"},
	}

	SkinToneOptions           = opts("Fair", "Wheatish", "Dusky", "Dark")
	BodyTypeOptions           = opts("Slim", "Athletic", "Average", "Heavy")
	PhysicalDisabilityOptions = yesNo
	SmokeOptions              = opts("No", "Yes", "Occasionally")
	DrinkOptions              = opts("No", "Yes", "Occasionally")
	VegNonvegOptions          = opts("Vegetarian", "Non-Vegetarian", "Eggetarian")
	NRIStatusOptions          = yesNo

	EducationLevelOptions = opts("High School", "Undergraduate", "Graduate", "Post Graduate", "Doctorate")
	EducationFieldOptions = opts("Engineering", "Medical", "Commerce", "Arts", "Management", "Law", "Other")
	FamilyValueOptions    = opts("Orthodox", "Traditional", "Moderate", "Liberal")
	FamilyTypeOptions     = opts("Joint", "Nuclear", "Extended")
)

// UserStatuses is the closed status vocabulary for a profile's lifecycle.
var UserStatuses = []string{"Pending", "Approved", "Expired", "Canceled", "Incomplete", "Unapproved"}

// ValidStatus reports whether s is one of the declared profile statuses.
func ValidStatus(s string) bool {
	for _, v := range UserStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ValidOption reports whether v is the empty string ("unset") or one of the
// declared option values.
func ValidOption(v string, options []Option) bool {
	if v == "" {
		return true
	}
	for _, opt := range options {
		if opt.Value == v {
			return true
		}
	}
	return false
}
