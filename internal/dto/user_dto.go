package dto

// RegisterRequest is the public signup payload. The nested detail groups are
// optional; whatever arrives is stored and later curated from the console.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`

	Gender        string `json:"gender"`
	DOB           string `json:"dob"`
	Height        string `json:"height"`
	Religion      string `json:"religion"`
	Caste         string `json:"caste"`
	MaritalStatus string `json:"marital_status"`
	Mangalik      string `json:"mangalik"`
	Language      string `json:"language"`

	Hobbies         []string `json:"hobbies"`
	ProfilePictures []string `json:"profile_pictures"`

	BirthDetails       *BirthDetailsPayload       `json:"birth_details"`
	PhysicalAttributes *PhysicalAttributesPayload `json:"physical_attributes"`
	Lifestyle          *LifestylePayload          `json:"lifestyle"`
	Location           *LocationPayload           `json:"location"`
}

type BirthDetailsPayload struct {
	BirthTime  string `json:"birth_time"`
	BirthPlace string `json:"birth_place"`
}

type PhysicalAttributesPayload struct {
	SkinTone           string `json:"skin_tone"`
	BodyType           string `json:"body_type"`
	PhysicalDisability string `json:"physical_disability"`
	DisabilityReason   string `json:"disability_reason"`
}

type LifestylePayload struct {
	Smoke     string `json:"smoke"`
	Drink     string `json:"drink"`
	VegNonveg string `json:"veg_nonveg"`
	NRIStatus string `json:"nri_status"`
}

type LocationPayload struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

// UpdateUserRequest is the user-section save payload from the console. All
// fields are pointers so a partial body (for example a photo-list-only
// update) touches only the fields it carries.
type UpdateUserRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Mobile        *string `json:"mobile"`
	Gender        *string `json:"gender"`
	DOB           *string `json:"dob"`
	Height        *string `json:"height"`
	Religion      *string `json:"religion"`
	Caste         *string `json:"caste"`
	MaritalStatus *string `json:"marital_status"`
	Mangalik      *string `json:"mangalik"`
	Language      *string `json:"language"`

	Hobbies         *[]string `json:"hobbies"`
	ProfilePictures *[]string `json:"profile_pictures"`

	BirthDetails       *BirthDetailsPayload       `json:"birth_details"`
	PhysicalAttributes *PhysicalAttributesPayload `json:"physical_attributes"`
	Lifestyle          *LifestylePayload          `json:"lifestyle"`
	Location           *LocationPayload           `json:"location"`
}

type UpdateAstrologyRequest struct {
	RashiNakshatra string `json:"rashi_nakshatra"`
	Gotra          string `json:"gotra"`
}

type UpdateEducationRequest struct {
	EducationLevel string                 `json:"education_level"`
	EducationField string                 `json:"education_field"`
	SchoolDetails  *SchoolDetailsPayload  `json:"school_details"`
	CollegeDetails *CollegeDetailsPayload `json:"college_details"`
}

type SchoolDetailsPayload struct {
	Name string `json:"name"`
	City string `json:"city"`
}

type CollegeDetailsPayload struct {
	Name        string `json:"name"`
	City        string `json:"city"`
	PassoutYear string `json:"passout_year"`
}

type UpdateFamilyRequest struct {
	FamilyValue string           `json:"family_value"`
	FamilyType  string           `json:"family_type"`
	Mother      *ParentPayload   `json:"mother"`
	Father      *ParentPayload   `json:"father"`
	Siblings    *SiblingsPayload `json:"siblings"`
}

type ParentPayload struct {
	Name       string `json:"name"`
	Occupation string `json:"occupation"`
}

type SiblingsPayload struct {
	BrotherCount int `json:"brother_count"`
	SisterCount  int `json:"sister_count"`
}

type UpdateProfessionRequest struct {
	Occupation  string              `json:"occupation"`
	WorkAddress *WorkAddressPayload `json:"work_address"`
}

type WorkAddressPayload struct {
	Address string `json:"address"`
	City    string `json:"city"`
}
