package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/punjabi-rishtey/admin-api/internal/dto"
	"github.com/punjabi-rishtey/admin-api/internal/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrCodeTaken     = errors.New("coupon code already exists")
	ErrBadRating     = errors.New("rating must be between 1 and 5")
	ErrInquiryClosed = errors.New("inquiry already closed")
)

// ContentService covers the site-content CRUD the console manages:
// testimonials, coupons, membership plans, broadcast messages, reviews,
// the payment QR asset and support inquiries.
type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

// Testimonials

func (s *ContentService) ListTestimonials() ([]models.Testimonial, error) {
	var out []models.Testimonial
	if err := s.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return out, nil
}

func (s *ContentService) CreateTestimonial(req *dto.TestimonialRequest) (*models.Testimonial, error) {
	if req.UserName == "" || req.Message == "" {
		return nil, errors.New("user_name and message are required")
	}
	t := models.Testimonial{
		ID:                    uuid.New(),
		UserName:              req.UserName,
		Message:               req.Message,
		ImageURL:              req.ImageURL,
		GroomRegistrationDate: req.GroomRegistrationDate,
		BrideRegistrationDate: req.BrideRegistrationDate,
		MarriageDate:          req.MarriageDate,
	}
	if err := s.db.Create(&t).Error; err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}
	return &t, nil
}

func (s *ContentService) UpdateTestimonial(id uuid.UUID, req *dto.TestimonialRequest) (*models.Testimonial, error) {
	var t models.Testimonial
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}
	t.UserName = req.UserName
	t.Message = req.Message
	t.ImageURL = req.ImageURL
	t.GroomRegistrationDate = req.GroomRegistrationDate
	t.BrideRegistrationDate = req.BrideRegistrationDate
	t.MarriageDate = req.MarriageDate
	if err := s.db.Save(&t).Error; err != nil {
		return nil, fmt.Errorf("failed to update testimonial: %w", err)
	}
	return &t, nil
}

func (s *ContentService) DeleteTestimonial(id uuid.UUID) error {
	return deleteByID(s.db, &models.Testimonial{}, id)
}

// Coupons

func (s *ContentService) ListCoupons() ([]models.Coupon, error) {
	var out []models.Coupon
	if err := s.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	return out, nil
}

func (s *ContentService) CreateCoupon(req *dto.CouponRequest) (*models.Coupon, error) {
	if err := validateCoupon(req); err != nil {
		return nil, err
	}
	var existing models.Coupon
	if err := s.db.Where("code = ?", req.Code).First(&existing).Error; err == nil {
		return nil, ErrCodeTaken
	}
	c := models.Coupon{
		ID:            uuid.New(),
		Code:          req.Code,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		IsActive:      true,
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if err := s.db.Create(&c).Error; err != nil {
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}
	return &c, nil
}

func (s *ContentService) UpdateCoupon(id uuid.UUID, req *dto.CouponRequest) (*models.Coupon, error) {
	if err := validateCoupon(req); err != nil {
		return nil, err
	}
	var c models.Coupon
	if err := s.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}
	c.Code = req.Code
	c.DiscountType = req.DiscountType
	c.DiscountValue = req.DiscountValue
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if err := s.db.Save(&c).Error; err != nil {
		return nil, fmt.Errorf("failed to update coupon: %w", err)
	}
	return &c, nil
}

func (s *ContentService) DeleteCoupon(id uuid.UUID) error {
	return deleteByID(s.db, &models.Coupon{}, id)
}

func validateCoupon(req *dto.CouponRequest) error {
	if req.Code == "" {
		return errors.New("coupon code is required")
	}
	if req.DiscountType != "percentage" && req.DiscountType != "flat" {
		return errors.New("discountType must be percentage or flat")
	}
	if req.DiscountValue <= 0 {
		return errors.New("discountValue must be positive")
	}
	if req.DiscountType == "percentage" && req.DiscountValue > 100 {
		return errors.New("percentage discount cannot exceed 100")
	}
	return nil
}

// Membership plans

func (s *ContentService) ListMembershipPlans() ([]models.MembershipPlan, error) {
	var out []models.MembershipPlan
	if err := s.db.Order("price ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list membership plans: %w", err)
	}
	return out, nil
}

func (s *ContentService) CreateMembershipPlan(req *dto.MembershipPlanRequest) (*models.MembershipPlan, error) {
	if req.Name == "" || req.Price < 0 || req.Duration <= 0 {
		return nil, errors.New("plan needs a name, a non-negative price and a positive duration")
	}
	p := models.MembershipPlan{
		ID:                  uuid.New(),
		Name:                req.Name,
		Price:               req.Price,
		DurationMonths:      req.Duration,
		PremiumProfilesView: req.PremiumProfilesView,
	}
	if err := s.db.Create(&p).Error; err != nil {
		return nil, fmt.Errorf("failed to create membership plan: %w", err)
	}
	return &p, nil
}

func (s *ContentService) UpdateMembershipPlan(id uuid.UUID, req *dto.MembershipPlanRequest) (*models.MembershipPlan, error) {
	var p models.MembershipPlan
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}
	p.Name = req.Name
	p.Price = req.Price
	p.DurationMonths = req.Duration
	p.PremiumProfilesView = req.PremiumProfilesView
	if err := s.db.Save(&p).Error; err != nil {
		return nil, fmt.Errorf("failed to update membership plan: %w", err)
	}
	return &p, nil
}

func (s *ContentService) DeleteMembershipPlan(id uuid.UUID) error {
	return deleteByID(s.db, &models.MembershipPlan{}, id)
}

// Broadcast messages

func (s *ContentService) ListMessages() ([]models.BroadcastMessage, error) {
	var out []models.BroadcastMessage
	if err := s.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return out, nil
}

func (s *ContentService) CreateMessage(req *dto.BroadcastMessageRequest) (*models.BroadcastMessage, error) {
	if req.Message == "" {
		return nil, errors.New("message is required")
	}
	expires, err := time.Parse("2006-01-02", req.ExpiresAt)
	if err != nil {
		return nil, errors.New("expiresAt must be a YYYY-MM-DD date")
	}
	m := models.BroadcastMessage{
		ID:        uuid.New(),
		Message:   req.Message,
		ExpiresAt: expires,
	}
	if err := s.db.Create(&m).Error; err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return &m, nil
}

func (s *ContentService) DeleteMessage(id uuid.UUID) error {
	return deleteByID(s.db, &models.BroadcastMessage{}, id)
}

// Reviews

func (s *ContentService) ListReviews() ([]models.Review, error) {
	var out []models.Review
	if err := s.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return out, nil
}

func (s *ContentService) CreateReview(req *dto.ReviewRequest) (*models.Review, error) {
	if req.Ratings < 1 || req.Ratings > 5 {
		return nil, ErrBadRating
	}
	r := models.Review{
		ID:       uuid.New(),
		UserName: req.UserName,
		Message:  req.Message,
		Ratings:  req.Ratings,
	}
	if err := s.db.Create(&r).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &r, nil
}

func (s *ContentService) DeleteReview(id uuid.UUID) error {
	return deleteByID(s.db, &models.Review{}, id)
}

// QR asset

// GetQRAsset returns the current payment QR, or ErrNotFound when none has
// been uploaded yet.
func (s *ContentService) GetQRAsset() (*models.QRAsset, error) {
	var qr models.QRAsset
	if err := s.db.Order("updated_at DESC").First(&qr).Error; err != nil {
		return nil, ErrNotFound
	}
	return &qr, nil
}

// SetQRAsset replaces the payment QR. There is a single active asset; a new
// upload supersedes the previous one.
func (s *ContentService) SetQRAsset(req *dto.QRAssetRequest) (*models.QRAsset, error) {
	if req.Name == "" || req.ImageURL == "" {
		return nil, errors.New("name and imageUrl are required")
	}

	var qr models.QRAsset
	err := s.db.Order("updated_at DESC").First(&qr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		qr = models.QRAsset{ID: uuid.New()}
	} else if err != nil {
		return nil, err
	}

	qr.Name = req.Name
	qr.ImageURL = req.ImageURL
	if err := s.db.Save(&qr).Error; err != nil {
		return nil, fmt.Errorf("failed to save QR asset: %w", err)
	}
	return &qr, nil
}

// Inquiries

func (s *ContentService) ListInquiries() ([]models.Inquiry, error) {
	var out []models.Inquiry
	if err := s.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	return out, nil
}

func (s *ContentService) ReplyInquiry(id uuid.UUID, reply string) (*models.Inquiry, error) {
	if reply == "" {
		return nil, errors.New("reply is required")
	}
	var inq models.Inquiry
	if err := s.db.First(&inq, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}
	inq.Reply = reply
	if err := s.db.Save(&inq).Error; err != nil {
		return nil, fmt.Errorf("failed to reply to inquiry: %w", err)
	}
	return &inq, nil
}

func (s *ContentService) CloseInquiry(id uuid.UUID) error {
	var inq models.Inquiry
	if err := s.db.First(&inq, "id = ?", id).Error; err != nil {
		return ErrNotFound
	}
	if inq.Status == "closed" {
		return ErrInquiryClosed
	}
	return s.db.Model(&inq).Update("status", "closed").Error
}

func deleteByID(db *gorm.DB, model any, id uuid.UUID) error {
	res := db.Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return fmt.Errorf("failed to delete record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
