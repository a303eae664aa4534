package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/punjabi-rishtey/admin-api/internal/dto"
	"github.com/punjabi-rishtey/admin-api/internal/models"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// ListPending returns payments awaiting review, newest first, with the
// paying user attached for the subscriptions screen.
func (s *PaymentService) ListPending() ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Preload("User").
		Where("status = ?", "pending").
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// Approve marks a payment approved and activates the paying user's profile.
// The expiry comes from the purchased plan's duration; without a plan the
// profile gets a year.
func (s *PaymentService) Approve(paymentID uuid.UUID) error {
	var payment models.Payment
	if err := s.db.First(&payment, "id = ?", paymentID).Error; err != nil {
		return ErrPaymentNotFound
	}

	months := 12
	if payment.PlanID != nil {
		var plan models.MembershipPlan
		if err := s.db.First(&plan, "id = ?", *payment.PlanID).Error; err == nil && plan.DurationMonths > 0 {
			months = plan.DurationMonths
		}
	}
	expiry := time.Now().AddDate(0, months, 0)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&payment).Update("status", "approved").Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", payment.UserID).Updates(map[string]any{
			"status":      "Approved",
			"expiry_date": expiry,
		}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to approve payment: %w", err)
	}

	slog.Info("payment approved", "payment_id", paymentID, "user_id", payment.UserID, "expiry", expiry)
	return nil
}

// Reject marks a payment rejected. The user's profile stays untouched.
func (s *PaymentService) Reject(paymentID uuid.UUID) error {
	res := s.db.Model(&models.Payment{}).Where("id = ?", paymentID).Update("status", "rejected")
	if res.Error != nil {
		return fmt.Errorf("failed to reject payment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

// Dashboard aggregates the counters shown on the console landing page.
func (s *PaymentService) Dashboard() (*dto.DashboardResponse, error) {
	out := &dto.DashboardResponse{}

	counts := []struct {
		dst   *int64
		query *gorm.DB
	}{
		{&out.TotalUsers, s.db.Model(&models.User{})},
		{&out.PendingUsers, s.db.Model(&models.User{}).Where("status = ?", "Pending")},
		{&out.ApprovedUsers, s.db.Model(&models.User{}).Where("status = ?", "Approved")},
		{&out.ExpiredUsers, s.db.Model(&models.User{}).Where("status = ?", "Expired")},
		{&out.PendingPayments, s.db.Model(&models.Payment{}).Where("status = ?", "pending")},
		{&out.OpenInquiries, s.db.Model(&models.Inquiry{}).Where("status = ?", "open")},
		{&out.Testimonials, s.db.Model(&models.Testimonial{})},
		{&out.Reviews, s.db.Model(&models.Review{})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dst).Error; err != nil {
			return nil, fmt.Errorf("failed to build dashboard: %w", err)
		}
	}
	return out, nil
}
