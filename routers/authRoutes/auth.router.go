package authRoutes

import (
	authControllers "edtech/controllers/auth"
	"edtech/middleware"
	authValidators "edtech/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/send/otp", authValidators.SendOTP(), authControllers.SendOTP)
	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Put("/change/password", middleware.JWTMiddleware, authValidators.ChangePassword(), authControllers.ChangePassword)
	authGroup.Post("/reset/password/token", authValidators.ResetPasswordToken(), authControllers.ResetPasswordToken)
	authGroup.Post("/reset/password", authValidators.ResetPassword(), authControllers.ResetPassword)
}
