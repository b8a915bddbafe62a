package sectionValidator

import (
	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateSectionRequest struct {
	SectionName string `json:"sectionName" validate:"required"`
	CourseID    uint   `json:"courseId" validate:"required,gt=0"`
}

type UpdateSectionRequest struct {
	SectionName string `json:"sectionName" validate:"required"`
	SectionID   uint   `json:"sectionId" validate:"required,gt=0"`
}

type DeleteSectionRequest struct {
	SectionID uint `json:"sectionId" validate:"required,gt=0"`
}

type CreateSubSectionRequest struct {
	SectionID    uint   `json:"sectionId" validate:"required,gt=0"`
	Title        string `json:"title" validate:"required"`
	TimeDuration string `json:"timeDuration"`
	Description  string `json:"description" validate:"required"`
	VideoURL     string `json:"videoUrl" validate:"required,url"`
}

type UpdateSubSectionRequest struct {
	SubSectionID uint   `json:"subSectionId" validate:"required,gt=0"`
	Title        string `json:"title"`
	TimeDuration string `json:"timeDuration"`
	Description  string `json:"description"`
	VideoURL     string `json:"videoUrl" validate:"omitempty,url"`
}

type DeleteSubSectionRequest struct {
	SubSectionID uint `json:"subSectionId" validate:"required,gt=0"`
}

func CreateSection() fiber.Handler {
	return validateInto("validatedCreateSection", func() interface{} { return new(CreateSectionRequest) })
}

func UpdateSection() fiber.Handler {
	return validateInto("validatedUpdateSection", func() interface{} { return new(UpdateSectionRequest) })
}

func DeleteSection() fiber.Handler {
	return validateInto("validatedDeleteSection", func() interface{} { return new(DeleteSectionRequest) })
}

func CreateSubSection() fiber.Handler {
	return validateInto("validatedCreateSubSection", func() interface{} { return new(CreateSubSectionRequest) })
}

func UpdateSubSection() fiber.Handler {
	return validateInto("validatedUpdateSubSection", func() interface{} { return new(UpdateSubSectionRequest) })
}

func DeleteSubSection() fiber.Handler {
	return validateInto("validatedDeleteSubSection", func() interface{} { return new(DeleteSubSectionRequest) })
}

// validateInto parses the body into a fresh request struct, validates it and
// stashes it under key
func validateInto(key string, newReq func() interface{}) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := newReq()

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

		c.Locals(key, reqData)
		return c.Next()
	}
}
