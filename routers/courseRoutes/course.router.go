package courseRoutes

import (
	controllers "edtech/controllers/course"
	"edtech/middleware"
	validators "edtech/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course, section, subsection and tag routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Courses
	courseGroup.Post("/create", middleware.JWTMiddleware, middleware.IsInstructor(), validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Get("/list", controllers.GetAllCourses)
	courseGroup.Get("/:id", validators.GetCourseDetail(), controllers.GetCourseDetails)

	// Sections (instructor content management)
	sectionGroup := app.Group("/section", middleware.JWTMiddleware, middleware.IsInstructor())
	sectionGroup.Post("/create", validators.CreateSection(), controllers.CreateSection)
	sectionGroup.Put("/update", validators.UpdateSection(), controllers.UpdateSection)
	sectionGroup.Delete("/delete", validators.DeleteSection(), controllers.DeleteSection)

	// Subsections
	subSectionGroup := app.Group("/subsection", middleware.JWTMiddleware, middleware.IsInstructor())
	subSectionGroup.Post("/create", validators.CreateSubSection(), controllers.CreateSubSection)
	subSectionGroup.Put("/update", validators.UpdateSubSection(), controllers.UpdateSubSection)
	subSectionGroup.Delete("/delete", validators.DeleteSubSection(), controllers.DeleteSubSection)

	// Tags
	tagGroup := app.Group("/tag")
	tagGroup.Post("/create", middleware.JWTMiddleware, middleware.IsAdmin(), validators.CreateTag(), controllers.CreateTag)
	tagGroup.Get("/list", controllers.GetAllTags)
}
