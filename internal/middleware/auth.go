package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"

	"github.com/punjabi-rishtey/admin-api/internal/config"
	"github.com/punjabi-rishtey/admin-api/internal/dto"
)

func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		// Requests carrying the static admin token skip JWT validation;
		// AdminRequired checks the token itself.
		Filter: func(c *fiber.Ctx) bool {
			return cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}
