package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/punjabi-rishtey/admin-api/internal/dto"
	"github.com/punjabi-rishtey/admin-api/internal/services"
)

// ContentHandler serves the site-content CRUD screens: testimonials,
// coupons, membership plans, broadcast messages, reviews, the payment QR
// and support inquiries.
type ContentHandler struct {
	contentService *services.ContentService
}

func NewContentHandler(contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// Testimonials

func (h *ContentHandler) ListTestimonials(c *fiber.Ctx) error {
	out, err := h.contentService.ListTestimonials()
	if err != nil {
		return internalError(c, "Failed to fetch testimonials")
	}
	return c.JSON(out)
}

func (h *ContentHandler) CreateTestimonial(c *fiber.Ctx) error {
	var req dto.TestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	t, err := h.contentService.CreateTestimonial(&req)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

func (h *ContentHandler) UpdateTestimonial(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid testimonial ID")
	}
	var req dto.TestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	t, err := h.contentService.UpdateTestimonial(id, &req)
	if err != nil {
		return contentError(c, err, "Failed to update testimonial")
	}
	return c.JSON(t)
}

func (h *ContentHandler) DeleteTestimonial(c *fiber.Ctx) error {
	return h.deleteByParam(c, h.contentService.DeleteTestimonial, "Testimonial deleted successfully")
}

// Coupons

func (h *ContentHandler) ListCoupons(c *fiber.Ctx) error {
	out, err := h.contentService.ListCoupons()
	if err != nil {
		return internalError(c, "Failed to fetch coupons")
	}
	return c.JSON(out)
}

func (h *ContentHandler) CreateCoupon(c *fiber.Ctx) error {
	var req dto.CouponRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	coupon, err := h.contentService.CreateCoupon(&req)
	if err != nil {
		if errors.Is(err, services.ErrCodeTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(coupon)
}

func (h *ContentHandler) UpdateCoupon(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid coupon ID")
	}
	var req dto.CouponRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	coupon, err := h.contentService.UpdateCoupon(id, &req)
	if err != nil {
		return contentError(c, err, "Failed to update coupon")
	}
	return c.JSON(coupon)
}

func (h *ContentHandler) DeleteCoupon(c *fiber.Ctx) error {
	return h.deleteByParam(c, h.contentService.DeleteCoupon, "Coupon deleted successfully")
}

// Membership plans

func (h *ContentHandler) ListMembershipPlans(c *fiber.Ctx) error {
	out, err := h.contentService.ListMembershipPlans()
	if err != nil {
		return internalError(c, "Failed to fetch membership plans")
	}
	return c.JSON(out)
}

func (h *ContentHandler) CreateMembershipPlan(c *fiber.Ctx) error {
	var req dto.MembershipPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	plan, err := h.contentService.CreateMembershipPlan(&req)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}

func (h *ContentHandler) UpdateMembershipPlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid plan ID")
	}
	var req dto.MembershipPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	plan, err := h.contentService.UpdateMembershipPlan(id, &req)
	if err != nil {
		return contentError(c, err, "Failed to update membership plan")
	}
	return c.JSON(plan)
}

func (h *ContentHandler) DeleteMembershipPlan(c *fiber.Ctx) error {
	return h.deleteByParam(c, h.contentService.DeleteMembershipPlan, "Membership plan deleted successfully")
}

// Broadcast messages

func (h *ContentHandler) ListMessages(c *fiber.Ctx) error {
	out, err := h.contentService.ListMessages()
	if err != nil {
		return internalError(c, "Failed to fetch messages")
	}
	return c.JSON(out)
}

func (h *ContentHandler) CreateMessage(c *fiber.Ctx) error {
	var req dto.BroadcastMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	msg, err := h.contentService.CreateMessage(&req)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

func (h *ContentHandler) DeleteMessage(c *fiber.Ctx) error {
	return h.deleteByParam(c, h.contentService.DeleteMessage, "Message deleted successfully")
}

// Reviews

func (h *ContentHandler) ListReviews(c *fiber.Ctx) error {
	out, err := h.contentService.ListReviews()
	if err != nil {
		return internalError(c, "Failed to fetch reviews")
	}
	return c.JSON(out)
}

func (h *ContentHandler) CreateReview(c *fiber.Ctx) error {
	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	r, err := h.contentService.CreateReview(&req)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

func (h *ContentHandler) DeleteReview(c *fiber.Ctx) error {
	return h.deleteByParam(c, h.contentService.DeleteReview, "Review deleted successfully")
}

// QR asset

func (h *ContentHandler) GetQRAsset(c *fiber.Ctx) error {
	qr, err := h.contentService.GetQRAsset()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "No QR code uploaded yet",
		})
	}
	return c.JSON(qr)
}

func (h *ContentHandler) SetQRAsset(c *fiber.Ctx) error {
	var req dto.QRAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	qr, err := h.contentService.SetQRAsset(&req)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(qr)
}

// Inquiries

func (h *ContentHandler) ListInquiries(c *fiber.Ctx) error {
	out, err := h.contentService.ListInquiries()
	if err != nil {
		return internalError(c, "Failed to fetch inquiries")
	}
	return c.JSON(out)
}

func (h *ContentHandler) ReplyInquiry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid inquiry ID")
	}
	var req dto.InquiryReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	inq, err := h.contentService.ReplyInquiry(id, req.Reply)
	if err != nil {
		return contentError(c, err, "Failed to reply to inquiry")
	}
	return c.JSON(inq)
}

func (h *ContentHandler) CloseInquiry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid inquiry ID")
	}
	if err := h.contentService.CloseInquiry(id); err != nil {
		if errors.Is(err, services.ErrInquiryClosed) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return contentError(c, err, "Failed to close inquiry")
	}
	return c.JSON(fiber.Map{"message": "Inquiry closed successfully"})
}

func (h *ContentHandler) deleteByParam(c *fiber.Ctx, del func(uuid.UUID) error, okMessage string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid ID")
	}
	if err := del(id); err != nil {
		return contentError(c, err, "Failed to delete record")
	}
	return c.JSON(fiber.Map{"message": okMessage})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: msg})
}

func internalError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: msg})
}

func contentError(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}
