package dto

type TestimonialRequest struct {
	UserName              string `json:"user_name"`
	Message               string `json:"message"`
	ImageURL              string `json:"image_url"`
	GroomRegistrationDate string `json:"groom_registration_date"`
	BrideRegistrationDate string `json:"bride_registration_date"`
	MarriageDate          string `json:"marriage_date"`
}

type CouponRequest struct {
	Code          string  `json:"code"`
	DiscountType  string  `json:"discountType"`
	DiscountValue float64 `json:"discountValue"`
	IsActive      *bool   `json:"isActive"`
}

type MembershipPlanRequest struct {
	Name                string  `json:"name"`
	Price               float64 `json:"price"`
	Duration            int     `json:"duration"`
	PremiumProfilesView int     `json:"premiumProfilesView"`
}

type BroadcastMessageRequest struct {
	Message   string `json:"message"`
	ExpiresAt string `json:"expiresAt"`
}

type ReviewRequest struct {
	UserName string `json:"user_name"`
	Message  string `json:"message"`
	Ratings  int    `json:"ratings"`
}

type QRAssetRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

type InquiryReplyRequest struct {
	Reply string `json:"reply"`
}

type DashboardResponse struct {
	TotalUsers    int64 `json:"total_users"`
	PendingUsers  int64 `json:"pending_users"`
	ApprovedUsers int64 `json:"approved_users"`
	ExpiredUsers  int64 `json:"expired_users"`

	PendingPayments int64 `json:"pending_payments"`
	OpenInquiries   int64 `json:"open_inquiries"`
	Testimonials    int64 `json:"testimonials"`
	Reviews         int64 `json:"reviews"`
}
