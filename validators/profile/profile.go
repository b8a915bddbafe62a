package profileValidator

import (
	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// UpdateProfileRequest carries the editable profile fields; every field is
// optional and absent fields are left untouched
type UpdateProfileRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	DateOfBirth   string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	About         string `json:"about"`
	ContactNumber string `json:"contactNumber" validate:"omitempty,min=8,max=15"`
	Gender        string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
}

func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			if verrs, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range verrs {
					errors[fe.Field()] = "Invalid value for " + fe.Field() + "!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfileUpdate", reqData)
		return c.Next()
	}
}
