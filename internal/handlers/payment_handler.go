package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/punjabi-rishtey/admin-api/internal/dto"
	"github.com/punjabi-rishtey/admin-api/internal/services"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) ListPending(c *fiber.Ctx) error {
	payments, err := h.paymentService.ListPending()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch subscriptions",
		})
	}
	return c.JSON(payments)
}

func (h *PaymentHandler) Approve(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid payment ID",
		})
	}

	if err := h.paymentService.Approve(paymentID); err != nil {
		if errors.Is(err, services.ErrPaymentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to approve payment",
		})
	}
	return c.JSON(fiber.Map{"message": "Payment approved successfully"})
}

func (h *PaymentHandler) Reject(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid payment ID",
		})
	}

	if err := h.paymentService.Reject(paymentID); err != nil {
		if errors.Is(err, services.ErrPaymentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to reject payment",
		})
	}
	return c.JSON(fiber.Map{"message": "Payment rejected successfully"})
}

func (h *PaymentHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.paymentService.Dashboard()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to build dashboard",
		})
	}
	return c.JSON(stats)
}
