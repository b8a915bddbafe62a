package paymentValidator

import (
	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CapturePaymentRequest lists the courses a payment order is created for
type CapturePaymentRequest struct {
	Courses []uint `json:"courses" validate:"required,min=1,dive,gt=0"`
}

// PurchaseRequest is the instant-purchase payload
type PurchaseRequest struct {
	CourseID uint `json:"courseId" validate:"required,gt=0"`
}

func CapturePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CapturePaymentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide at least one course id!", nil)
		}

		c.Locals("validatedCapture", reqData)
		return c.Next()
	}
}

func Purchase() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PurchaseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course id is required!", nil)
		}

		c.Locals("validatedPurchase", reqData)
		return c.Next()
	}
}
