package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/punjabi-rishtey/admin-api/internal/config"
	"github.com/punjabi-rishtey/admin-api/internal/handlers"
	"github.com/punjabi-rishtey/admin-api/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	paymentHandler *handlers.PaymentHandler,
	contentHandler *handlers.ContentHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Public signup from the marketing site
	api.Post("/users/register", userHandler.Register)

	// Admin auth. Login gets a stricter limit: 10 req/min per IP.
	adminAuth := api.Group("/admin/auth")
	adminAuth.Post("/login", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), authHandler.Login)

	jwtGuard := middleware.JWTProtected(cfg)
	adminGuard := middleware.AdminRequired(cfg)

	// Everything else under /admin/auth requires a valid admin token.
	admin := adminAuth.Group("", jwtGuard, adminGuard)

	// User curation
	admin.Get("/users/:status", userHandler.ListByStatus)
	admin.Get("/user/:id", userHandler.GetUser)
	admin.Put("/users/edit/:id", userHandler.UpdateUser)
	admin.Put("/astrologies/:id", userHandler.UpdateAstrology)
	admin.Put("/educations/:id", userHandler.UpdateEducation)
	admin.Put("/families/:id", userHandler.UpdateFamily)
	admin.Put("/professions/:id", userHandler.UpdateProfession)
	admin.Put("/change-password/:id", authHandler.ChangeUserPassword)
	admin.Put("/users/approve/:id", userHandler.Approve)
	admin.Put("/users/block/:id", userHandler.Block)
	admin.Delete("/deleteuser/:id", userHandler.Delete)

	// Payments and dashboard
	admin.Get("/subscriptions", paymentHandler.ListPending)
	admin.Put("/payments/approve/:id", paymentHandler.Approve)
	admin.Put("/payments/reject/:id", paymentHandler.Reject)
	admin.Get("/dashboard", paymentHandler.Dashboard)

	// Support inquiries
	admin.Get("/inquiries/all", contentHandler.ListInquiries)
	admin.Post("/inquiries/:id/reply", contentHandler.ReplyInquiry)
	admin.Put("/inquiries/:id/close", contentHandler.CloseInquiry)

	// Testimonials
	testimonials := api.Group("/testimonials")
	testimonials.Get("/all", contentHandler.ListTestimonials)
	testimonials.Post("/add", jwtGuard, adminGuard, contentHandler.CreateTestimonial)
	testimonials.Put("/edit/:id", jwtGuard, adminGuard, contentHandler.UpdateTestimonial)
	testimonials.Delete("/:id", jwtGuard, adminGuard, contentHandler.DeleteTestimonial)

	// Coupons
	coupons := api.Group("/coupons", jwtGuard, adminGuard)
	coupons.Get("", contentHandler.ListCoupons)
	coupons.Post("", contentHandler.CreateCoupon)
	coupons.Put("/:id", contentHandler.UpdateCoupon)
	coupons.Delete("/:id", contentHandler.DeleteCoupon)

	// Membership plans
	memberships := api.Group("/memberships")
	memberships.Get("/all", contentHandler.ListMembershipPlans)
	memberships.Post("/add", jwtGuard, adminGuard, contentHandler.CreateMembershipPlan)
	memberships.Put("/edit/:id", jwtGuard, adminGuard, contentHandler.UpdateMembershipPlan)
	memberships.Delete("/delete/:id", jwtGuard, adminGuard, contentHandler.DeleteMembershipPlan)

	// Broadcast messages
	messages := api.Group("/messages")
	messages.Get("", contentHandler.ListMessages)
	messages.Post("", jwtGuard, adminGuard, contentHandler.CreateMessage)
	messages.Delete("/:id", jwtGuard, adminGuard, contentHandler.DeleteMessage)

	// Reviews. Visitors submit them from the site; only admins delete.
	reviews := api.Group("/review")
	reviews.Get("/all", contentHandler.ListReviews)
	reviews.Post("", contentHandler.CreateReview)
	reviews.Delete("/:id", jwtGuard, adminGuard, contentHandler.DeleteReview)

	// Payment QR
	api.Get("/qr", contentHandler.GetQRAsset)
	api.Put("/qr", jwtGuard, adminGuard, contentHandler.SetQRAsset)
}
