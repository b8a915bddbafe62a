package contactRoutes

import (
	contactController "lms/controllers/contact"
	contactValidator "lms/validators/contact"

	"github.com/gofiber/fiber/v2"
)

func SetupContactRoutes(app *fiber.App, controller *contactController.ContactController) {
	app.Post("/contact", contactValidator.Contact(), controller.SubmitEnquiry)
}
