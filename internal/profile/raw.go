package profile

// RawUserRecord is the decode target for a full user record as the backend
// returns it. Nothing about the payload is trusted: nested objects may be
// absent, enumerated fields may carry free-form strings or literal booleans,
// and hobbies may arrive as a list or as comma-joined text. Enum-ish fields
// are therefore typed as any and resolved by Normalize.
type RawUserRecord struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
	Gender any    `json:"gender"`
	DOB    string `json:"dob"`
	Height string `json:"height"`

	Religion      any    `json:"religion"`
	Caste         any    `json:"caste"`
	MaritalStatus any    `json:"marital_status"`
	Mangalik      any    `json:"mangalik"`
	Language      string `json:"language"`
	Hobbies       any    `json:"hobbies"`

	BirthDetails       *RawBirthDetails       `json:"birth_details"`
	PhysicalAttributes *RawPhysicalAttributes `json:"physical_attributes"`
	Lifestyle          *RawLifestyle          `json:"lifestyle"`
	Location           *RawLocation           `json:"location"`

	ProfilePictures []string `json:"profile_pictures"`

	Astrology  *RawAstrology  `json:"astrology"`
	Education  *RawEducation  `json:"education"`
	Family     *RawFamily     `json:"family"`
	Profession *RawProfession `json:"profession"`

	Status       string `json:"status"`
	RegisterDate string `json:"register_date"`
	ExpiryDate   string `json:"expiry_date"`
}

type RawBirthDetails struct {
	BirthTime  string `json:"birth_time"`
	BirthPlace string `json:"birth_place"`
}

type RawPhysicalAttributes struct {
	SkinTone           any    `json:"skin_tone"`
	BodyType           any    `json:"body_type"`
	PhysicalDisability any    `json:"physical_disability"`
	DisabilityReason   string `json:"disability_reason"`
}

type RawLifestyle struct {
	Smoke     any `json:"smoke"`
	Drink     any `json:"drink"`
	VegNonveg any `json:"veg_nonveg"`
	NRIStatus any `json:"nri_status"`
}

type RawLocation struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

type RawAstrology struct {
	RashiNakshatra string `json:"rashi_nakshatra"`
	Gotra          string `json:"gotra"`
}

type RawEducation struct {
	EducationLevel any                `json:"education_level"`
	EducationField any                `json:"education_field"`
	SchoolDetails  *RawSchoolDetails  `json:"school_details"`
	CollegeDetails *RawCollegeDetails `json:"college_details"`
}

type RawSchoolDetails struct {
	Name string `json:"name"`
	City string `json:"city"`
}

type RawCollegeDetails struct {
	Name        string `json:"name"`
	City        string `json:"city"`
	PassoutYear string `json:"passout_year"`
}

type RawFamily struct {
	FamilyValue any          `json:"family_value"`
	FamilyType  any          `json:"family_type"`
	Mother      *RawParent   `json:"mother"`
	Father      *RawParent   `json:"father"`
	Siblings    *RawSiblings `json:"siblings"`
}

type RawParent struct {
	Name       string `json:"name"`
	Occupation string `json:"occupation"`
}

type RawSiblings struct {
	BrotherCount any `json:"brother_count"`
	SisterCount  any `json:"sister_count"`
}

type RawProfession struct {
	Occupation  string          `json:"occupation"`
	WorkAddress *RawWorkAddress `json:"work_address"`
}

type RawWorkAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
}
