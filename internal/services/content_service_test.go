package services

import (
	"errors"
	"testing"

	"github.com/punjabi-rishtey/admin-api/internal/dto"
)

func TestValidateCoupon(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CouponRequest
		wantErr bool
	}{
		{"valid percentage", dto.CouponRequest{Code: "WELCOME10", DiscountType: "percentage", DiscountValue: 10}, false},
		{"valid flat", dto.CouponRequest{Code: "FLAT500", DiscountType: "flat", DiscountValue: 500}, false},
		{"missing code", dto.CouponRequest{DiscountType: "flat", DiscountValue: 100}, true},
		{"bad type", dto.CouponRequest{Code: "X", DiscountType: "bogo", DiscountValue: 10}, true},
		{"zero value", dto.CouponRequest{Code: "X", DiscountType: "flat", DiscountValue: 0}, true},
		{"negative value", dto.CouponRequest{Code: "X", DiscountType: "flat", DiscountValue: -5}, true},
		{"percentage over 100", dto.CouponRequest{Code: "X", DiscountType: "percentage", DiscountValue: 150}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCoupon(&tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateCoupon() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// Out-of-range ratings are rejected before any database work.
func TestCreateReviewRatingGate(t *testing.T) {
	s := &ContentService{}
	for _, ratings := range []int{0, -1, 6} {
		_, err := s.CreateReview(&dto.ReviewRequest{UserName: "Asha", Ratings: ratings})
		if !errors.Is(err, ErrBadRating) {
			t.Errorf("CreateReview(ratings=%d) error = %v, want ErrBadRating", ratings, err)
		}
	}
}
