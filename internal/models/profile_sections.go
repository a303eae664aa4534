package models

import (
	"time"

	"github.com/google/uuid"
)

// The four secondary profile aggregates are separate tables keyed by user ID,
// each saved independently by its own admin endpoint.

type Astrology struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	RashiNakshatra string    `gorm:"size:100" json:"rashi_nakshatra"`
	Gotra          string    `gorm:"size:100" json:"gotra"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Education struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	EducationLevel string         `gorm:"size:50" json:"education_level"`
	EducationField string         `gorm:"size:50" json:"education_field"`
	SchoolDetails  SchoolDetails  `gorm:"embedded;embeddedPrefix:school_" json:"school_details"`
	CollegeDetails CollegeDetails `gorm:"embedded;embeddedPrefix:college_" json:"college_details"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type SchoolDetails struct {
	Name string `gorm:"size:255" json:"name"`
	City string `gorm:"size:100" json:"city"`
}

type CollegeDetails struct {
	Name        string `gorm:"size:255" json:"name"`
	City        string `gorm:"size:100" json:"city"`
	PassoutYear string `gorm:"size:10" json:"passout_year"`
}

type Family struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	FamilyValue string    `gorm:"size:50" json:"family_value"`
	FamilyType  string    `gorm:"size:50" json:"family_type"`
	Mother      Parent    `gorm:"embedded;embeddedPrefix:mother_" json:"mother"`
	Father      Parent    `gorm:"embedded;embeddedPrefix:father_" json:"father"`
	Siblings    Siblings  `gorm:"embedded;embeddedPrefix:sibling_" json:"siblings"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Parent struct {
	Name       string `gorm:"size:255" json:"name"`
	Occupation string `gorm:"size:100" json:"occupation"`
}

type Siblings struct {
	BrotherCount int `json:"brother_count"`
	SisterCount  int `json:"sister_count"`
}

type Profession struct {
	ID          uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Occupation  string      `gorm:"size:100" json:"occupation"`
	WorkAddress WorkAddress `gorm:"embedded;embeddedPrefix:work_" json:"work_address"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type WorkAddress struct {
	Address string `gorm:"size:255" json:"address"`
	City    string `gorm:"size:100" json:"city"`
}
