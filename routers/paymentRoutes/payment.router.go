package paymentRoutes

import (
	paymentController "edtech/controllers/payment"
	"edtech/middleware"
	paymentValidators "edtech/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes wires the payment workflow endpoints. The controller
// carries the orchestrator constructed at startup.
func SetupPaymentRoutes(app *fiber.App, ctl *paymentController.Controller) {
	paymentGroup := app.Group("/payment")

	paymentGroup.Post("/capture", middleware.JWTMiddleware, middleware.IsStudent(), paymentValidators.Capture(), ctl.Capture)
	// Provider webhook, authenticated by signature rather than session
	paymentGroup.Post("/verify", ctl.Verify)
	paymentGroup.Post("/confirm", middleware.JWTMiddleware, middleware.IsStudent(), paymentValidators.Confirm(), ctl.Confirm)
	paymentGroup.Post("/success/email", middleware.JWTMiddleware, paymentValidators.SuccessEmail(), ctl.SendSuccessEmail)
}
