package courseController

import (
	"io"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Uploader pushes images to the asset host and returns the hosted URL
type Uploader interface {
	UploadImage(filename string, file io.Reader) (string, error)
}

// CourseController serves catalog CRUD and progress tracking
type CourseController struct {
	Uploader Uploader
}

func New(uploader Uploader) *CourseController {
	return &CourseController{Uploader: uploader}
}

// CreateCourse creates a course owned by the calling instructor. The
// thumbnail is uploaded to the asset host before the row is written.
func (cc *CourseController) CreateCourse(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	form, ok := c.Locals("validatedCourseForm").(*courseValidator.CreateCourseForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var instructor models.User
	if err := db.Where("id = ? AND is_deleted = false AND role = ?", userID, "INSTRUCTOR").First(&instructor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor details not found", nil)
	}

	var category models.Category
	if err := db.Where("id = ? AND is_deleted = false", form.CategoryID).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category details not found", nil)
	}

	fileHeader, err := c.FormFile("thumbnailImage")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Thumbnail image is required!", nil)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read thumbnail image!", nil)
	}
	defer file.Close()

	thumbnailURL, err := cc.Uploader.UploadImage(fileHeader.Filename, file)
	if err != nil {
		log.Printf("Error uploading thumbnail: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload thumbnail!", nil)
	}

	course := courseModels.Course{
		CourseName:        form.CourseName,
		CourseDescription: form.CourseDescription,
		WhatYouWillLearn:  form.WhatYouWillLearn,
		Price:             form.Price,
		Thumbnail:         thumbnailURL,
		Tag:               form.Tag,
		Instructions:      form.Instructions,
		Status:            form.Status,
		InstructorID:      instructor.ID,
		CategoryID:        category.ID,
	}
	if err := db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully", course)
}

// ShowAllCourses lists published courses with their instructors
func (cc *CourseController) ShowAllCourses(c *fiber.Ctx) error {
	var courses []courseModels.Course
	if err := database.Database.Db.
		Where("status = ? AND is_deleted = false", "PUBLISHED").
		Preload("Instructor").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to get courses", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "All courses fetched", courses)
}

// GetCourseDetails returns the full course aggregate: instructor with
// profile, category, and the ordered section/sub-section tree
func (cc *CourseController) GetCourseDetails(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseDetails").(*courseValidator.CourseDetailsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course courseModels.Course
	err := database.Database.Db.
		Where("id = ? AND is_deleted = false", reqData.CourseID).
		Preload("Instructor.Profile").
		Preload("Category").
		Preload("Sections", "is_deleted = false").
		Preload("Sections.SubSections", "is_deleted = false").
		First(&course).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No course found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course Details fetched successfully", course)
}

// MarkSubSectionComplete records one content unit as finished in the
// caller's progress record
func (cc *CourseController) MarkSubSectionComplete(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedMarkComplete").(*courseValidator.MarkCompleteRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var progress courseModels.CourseProgress
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, reqData.CourseID).First(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "You are not enrolled in this course!", nil)
	}

	var subSection courseModels.SubSection
	if err := db.Where("id = ? AND is_deleted = false", reqData.SubSectionID).First(&subSection).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sub-section not found!", nil)
	}

	var existing courseModels.CompletedSubSection
	if err := db.Where("course_progress_id = ? AND sub_section_id = ?", progress.ID, subSection.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Lecture already marked complete!", nil)
	}

	completed := courseModels.CompletedSubSection{
		CourseProgressID: progress.ID,
		SubSectionID:     subSection.ID,
	}
	if err := db.Create(&completed).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture marked complete!", nil)
}
