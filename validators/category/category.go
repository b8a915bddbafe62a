package categoryValidator

import (
	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateCategoryRequest is the admin payload for a new category
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// CategoryDetailsRequest selects a category for its catalog page
type CategoryDetailsRequest struct {
	CategoryID uint `json:"categoryId" validate:"required,gt=0"`
}

func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCategoryRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide every detail for the category!", nil)
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}

func Details() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CategoryDetailsRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category id is required!", nil)
		}

		c.Locals("validatedCategoryDetails", reqData)
		return c.Next()
	}
}
