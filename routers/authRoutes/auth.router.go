package authRoutes

import (
	authController "lms/controllers/auth"
	authValidator "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, controller *authController.AuthController) {
	authGroup := app.Group("/auth")

	authGroup.Post("/sendotp", authValidator.SendOTP(), controller.SendOTP)
	authGroup.Post("/signup", authValidator.Signup(), controller.Signup)
	authGroup.Post("/login", authValidator.Login(), controller.Login)
}
