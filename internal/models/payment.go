package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment is a membership payment submitted by a user and reviewed from the
// subscriptions screen. Approving the payment is what activates the profile.
type Payment struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanID        *uuid.UUID `gorm:"type:uuid;index" json:"plan_id"`
	Amount        float64    `json:"amount"`
	Mode          string     `gorm:"size:30" json:"mode"`
	ScreenshotURL string     `gorm:"size:512" json:"screenshot_url"`
	Status        string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	User          User       `gorm:"foreignKey:UserID" json:"user"`
}
