package profileRoutes

import (
	controllers "edtech/controllers/profile"
	"edtech/middleware"
	validators "edtech/validators/profile"

	"github.com/gofiber/fiber/v2"
)

func SetupProfileRoutes(app *fiber.App) {
	profileGroup := app.Group("/profile", middleware.JWTMiddleware)

	profileGroup.Put("/update", validators.UpdateProfile(), controllers.UpdateProfile)
	profileGroup.Get("/details", controllers.GetUserDetails)
	profileGroup.Get("/courses", controllers.GetEnrolledCourses)
	profileGroup.Delete("/delete", controllers.DeleteProfile)
}
