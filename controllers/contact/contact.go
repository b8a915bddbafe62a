package contactController

import (
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	contactValidator "lms/validators/contact"

	"github.com/gofiber/fiber/v2"
)

// Mailer forwards enquiries to the support inbox; delivery is best effort
type Mailer interface {
	SendContactEmail(supportInbox, fromEmail, name, phoneNo, message string)
}

// ContactController stores and forwards contact-us submissions
type ContactController struct {
	Mailer Mailer
}

func New(mailer Mailer) *ContactController {
	return &ContactController{Mailer: mailer}
}

// SubmitEnquiry records the message and forwards it to support
func (cc *ContactController) SubmitEnquiry(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*contactValidator.ContactRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	message := models.ContactMessage{
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Email:     reqData.Email,
		PhoneNo:   reqData.PhoneNo,
		Message:   reqData.Message,
	}
	if err := database.Database.Db.Create(&message).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit enquiry!", nil)
	}

	cc.Mailer.SendContactEmail(
		config.AppConfig.SupportEmail,
		reqData.Email,
		reqData.FirstName+" "+reqData.LastName,
		reqData.PhoneNo,
		reqData.Message,
	)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enquiry submitted successfully!", nil)
}
