package categoryController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	categoryValidator "lms/validators/category"

	"github.com/gofiber/fiber/v2"
)

// CreateCategory creates a new catalog category (admin only)
func CreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*categoryValidator.CreateCategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("name = ? AND is_deleted = false", reqData.Name).First(&models.Category{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Category already exists!", nil)
	}

	category := models.Category{
		Name:        reqData.Name,
		Description: reqData.Description,
	}
	if err := db.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error while creating category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully", category)
}

// ShowAllCategories lists every category
func ShowAllCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.Database.Db.Where("is_deleted = false").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error while fetching categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "All categories fetched successfully", categories)
}

// CategoryPageDetails returns the selected category with its published
// courses, plus the other categories for cross-navigation
func CategoryPageDetails(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategoryDetails").(*categoryValidator.CategoryDetailsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var selected models.Category
	if err := db.Where("id = ? AND is_deleted = false", reqData.CategoryID).First(&selected).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Data Not Found", nil)
	}

	var selectedCourses []courseModels.Course
	db.Where("category_id = ? AND status = ? AND is_deleted = false", selected.ID, "PUBLISHED").
		Preload("Instructor").
		Find(&selectedCourses)

	var otherCategories []models.Category
	db.Where("id <> ? AND is_deleted = false", selected.ID).Find(&otherCategories)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category page details fetched", fiber.Map{
		"selectedCategory": fiber.Map{
			"category": selected,
			"courses":  selectedCourses,
		},
		"differentCategories": otherCategories,
	})
}
