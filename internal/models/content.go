package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial is a married-couple success story shown on the public site.
type Testimonial struct {
	ID                     uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName               string         `gorm:"size:255;not null" json:"user_name"`
	Message                string         `gorm:"type:text" json:"message"`
	ImageURL               string         `gorm:"size:512" json:"image_url"`
	GroomRegistrationDate  string         `gorm:"size:20" json:"groom_registration_date"`
	BrideRegistrationDate  string         `gorm:"size:20" json:"bride_registration_date"`
	MarriageDate           string         `gorm:"size:20" json:"marriage_date"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
	DeletedAt              gorm.DeletedAt `gorm:"index" json:"-"`
}

// Coupon is a discount code. DiscountType is "percentage" or "flat".
type Coupon struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code          string    `gorm:"size:50;not null;uniqueIndex" json:"code"`
	DiscountType  string    `gorm:"size:20;not null" json:"discountType"`
	DiscountValue float64   `gorm:"not null" json:"discountValue"`
	IsActive      bool      `gorm:"default:true" json:"isActive"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MembershipPlan is a purchasable membership tier.
type MembershipPlan struct {
	ID                  uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name                string         `gorm:"size:100;not null" json:"name"`
	Price               float64        `gorm:"not null" json:"price"`
	DurationMonths      int            `gorm:"not null" json:"duration"`
	PremiumProfilesView int            `json:"premiumProfilesView"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

// BroadcastMessage is a site-wide announcement with an expiry.
type BroadcastMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	ExpiresAt time.Time `gorm:"index" json:"expiresAt"`
	CreatedAt time.Time `json:"created_at"`
}

// Review is a user-submitted site rating, 1 to 5.
type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName  string    `gorm:"size:255" json:"user_name"`
	Message   string    `gorm:"type:text" json:"message"`
	Ratings   int       `gorm:"not null" json:"ratings"`
	CreatedAt time.Time `json:"created_at"`
}

// QRAsset is the payment QR image shown to users, keyed by UPI name.
type QRAsset struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	ImageURL  string    `gorm:"size:512;not null" json:"imageUrl"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Inquiry is a support question submitted through the public site; admins
// reply and close it from the console.
type Inquiry struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Email     string    `gorm:"size:255" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Reply     string    `gorm:"type:text" json:"reply"`
	Status    string    `gorm:"size:20;not null;default:'open';index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
