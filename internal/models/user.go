package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is the primary matrimonial profile record. Nested detail groups are
// embedded with column prefixes; list-valued fields live in JSONB so the
// wire shape and the stored shape stay identical.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Email    string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Mobile   string    `gorm:"size:20" json:"mobile"`
	Password string    `gorm:"not null" json:"-"`

	Gender        string `gorm:"size:20" json:"gender"`
	DOB           string `gorm:"size:20" json:"dob"`
	Height        string `gorm:"size:20" json:"height"`
	Religion      string `gorm:"size:50" json:"religion"`
	Caste         string `gorm:"size:50" json:"caste"`
	MaritalStatus string `gorm:"size:50" json:"marital_status"`
	Mangalik      string `gorm:"size:30" json:"mangalik"`
	Language      string `gorm:"size:100" json:"language"`

	Hobbies         datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"hobbies"`
	ProfilePictures datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"profile_pictures"`

	BirthDetails       BirthDetails       `gorm:"embedded;embeddedPrefix:birth_" json:"birth_details"`
	PhysicalAttributes PhysicalAttributes `gorm:"embedded;embeddedPrefix:phys_" json:"physical_attributes"`
	Lifestyle          Lifestyle          `gorm:"embedded;embeddedPrefix:life_" json:"lifestyle"`
	Location           Location           `gorm:"embedded;embeddedPrefix:loc_" json:"location"`

	Status       string     `gorm:"size:20;not null;default:'Pending';index" json:"status"`
	RegisterDate time.Time  `json:"register_date"`
	ExpiryDate   *time.Time `json:"expiry_date"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type BirthDetails struct {
	BirthTime  string `gorm:"size:20" json:"birth_time"`
	BirthPlace string `gorm:"size:255" json:"birth_place"`
}

type PhysicalAttributes struct {
	SkinTone           string `gorm:"size:30" json:"skin_tone"`
	BodyType           string `gorm:"size:30" json:"body_type"`
	PhysicalDisability string `gorm:"size:10" json:"physical_disability"`
	DisabilityReason   string `gorm:"size:255" json:"disability_reason"`
}

type Lifestyle struct {
	Smoke     string `gorm:"size:20" json:"smoke"`
	Drink     string `gorm:"size:20" json:"drink"`
	VegNonveg string `gorm:"size:30" json:"veg_nonveg"`
	NRIStatus string `gorm:"size:10" json:"nri_status"`
}

type Location struct {
	Address string `gorm:"size:255" json:"address"`
	City    string `gorm:"size:100" json:"city"`
	Pincode string `gorm:"size:10" json:"pincode"`
}
