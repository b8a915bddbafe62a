package profileRoutes

import (
	profileController "lms/controllers/profile"
	"lms/middleware"
	profileValidator "lms/validators/profile"

	"github.com/gofiber/fiber/v2"
)

func SetupProfileRoutes(app *fiber.App, controller *profileController.ProfileController) {
	profileGroup := app.Group("/profile")

	profileGroup.Put("/update", middleware.JWTMiddleware, profileValidator.Update(), controller.UpdateProfile)
	profileGroup.Get("/details", middleware.JWTMiddleware, controller.GetUserDetails)
	profileGroup.Delete("/delete", middleware.JWTMiddleware, controller.DeleteAccount)
	profileGroup.Put("/updateDisplayPicture", middleware.JWTMiddleware, controller.UpdateDisplayPicture)
	profileGroup.Get("/enrolledCourses", middleware.JWTMiddleware, controller.GetEnrolledCourses)
}
