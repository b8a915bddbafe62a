package courseRoutes

import (
	courseController "lms/controllers/course"
	sectionController "lms/controllers/section"
	"lms/middleware"
	courseValidator "lms/validators/course"
	sectionValidator "lms/validators/section"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App, controller *courseController.CourseController) {
	courseGroup := app.Group("/course")

	// Catalog
	courseGroup.Post("/create",
		middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"), courseValidator.Create(), controller.CreateCourse)
	courseGroup.Get("/all", controller.ShowAllCourses)
	courseGroup.Post("/details", courseValidator.Details(), controller.GetCourseDetails)

	// Progress
	courseGroup.Post("/progress/complete",
		middleware.JWTMiddleware, middleware.RequireRole("STUDENT"), courseValidator.MarkComplete(), controller.MarkSubSectionComplete)

	// Sections
	courseGroup.Post("/section/create",
		middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"), sectionValidator.CreateSection(), sectionController.CreateSection)
	courseGroup.Put("/section/update",
		middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"), sectionValidator.UpdateSection(), sectionController.UpdateSection)
	courseGroup.Delete("/section/delete",
		middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"), sectionValidator.DeleteSection(), sectionController.DeleteSection)

	// Sub-sections
	courseGroup.Post("/subsection/create",
		middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"), sectionValidator.CreateSubSection(), sectionController.CreateSubSection)
	courseGroup.Put("/subsection/update",
		middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"), sectionValidator.UpdateSubSection(), sectionController.UpdateSubSection)
	courseGroup.Delete("/subsection/delete",
		middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"), sectionValidator.DeleteSubSection(), sectionController.DeleteSubSection)
}
