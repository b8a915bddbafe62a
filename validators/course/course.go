package courseValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateCourseForm carries the multipart fields of course creation; the
// thumbnail file itself is read by the controller
type CreateCourseForm struct {
	CourseName        string
	CourseDescription string
	WhatYouWillLearn  string
	Price             float64
	Tag               string
	CategoryID        uint
	Status            string
	Instructions      string
}

// CourseDetailsRequest selects a course for its detail aggregate
type CourseDetailsRequest struct {
	CourseID uint `json:"courseId" validate:"required,gt=0"`
}

// MarkCompleteRequest marks one content unit finished for the caller
type MarkCompleteRequest struct {
	CourseID     uint `json:"courseId" validate:"required,gt=0"`
	SubSectionID uint `json:"subSectionId" validate:"required,gt=0"`
}

// Create validates the multipart course-creation form field by field
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := &CreateCourseForm{
			CourseName:        strings.TrimSpace(c.FormValue("courseName")),
			CourseDescription: strings.TrimSpace(c.FormValue("courseDescription")),
			WhatYouWillLearn:  strings.TrimSpace(c.FormValue("whatYouWillLearn")),
			Tag:               strings.TrimSpace(c.FormValue("tag")),
			Status:            strings.TrimSpace(c.FormValue("status")),
			Instructions:      strings.TrimSpace(c.FormValue("instructions")),
		}

		errors := make(map[string]string)

		if form.CourseName == "" {
			errors["courseName"] = "Course name is required!"
		}
		if form.CourseDescription == "" {
			errors["courseDescription"] = "Course description is required!"
		}
		if form.WhatYouWillLearn == "" {
			errors["whatYouWillLearn"] = "This field is required!"
		}
		if form.Tag == "" {
			errors["tag"] = "Tag is required!"
		}

		price, err := strconv.ParseFloat(c.FormValue("price"), 64)
		if err != nil || price < 0 {
			errors["price"] = "Price must be a non-negative number!"
		}
		form.Price = price

		categoryID, err := strconv.Atoi(c.FormValue("category"))
		if err != nil || categoryID <= 0 {
			errors["category"] = "Valid category id is required!"
		}
		form.CategoryID = uint(categoryID)

		if form.Status == "" {
			form.Status = "DRAFT"
		}
		if form.Status != "DRAFT" && form.Status != "PUBLISHED" {
			errors["status"] = "Status must be DRAFT or PUBLISHED!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseForm", form)
		return c.Next()
	}
}

func Details() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseDetailsRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course id is required!", nil)
		}

		c.Locals("validatedCourseDetails", reqData)
		return c.Next()
	}
}

func MarkComplete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(MarkCompleteRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course id and sub-section id are required!", nil)
		}

		c.Locals("validatedMarkComplete", reqData)
		return c.Next()
	}
}
