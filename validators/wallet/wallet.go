package walletValidator

import (
	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// AmountRequest carries the amount for credit and debit operations
type AmountRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// Amount validates wallet add/deduct requests
func Amount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AmountRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid amount.", nil)
		}

		c.Locals("validatedAmount", reqData)
		return c.Next()
	}
}
