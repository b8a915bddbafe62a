package sectionController

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	sectionValidator "lms/validators/section"

	"github.com/gofiber/fiber/v2"
)

// CreateSection appends a new section to a course and returns the updated
// course aggregate
func CreateSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateSection").(*sectionValidator.CreateSectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = false", reqData.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// New sections go to the end of the course
	var count int64
	db.Model(&courseModels.Section{}).Where("course_id = ? AND is_deleted = false", course.ID).Count(&count)

	section := courseModels.Section{
		CourseID:    course.ID,
		SectionName: reqData.SectionName,
		OrderIndex:  int(count),
	}
	if err := db.Create(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error while creating section", nil)
	}

	db.Preload("Sections", "is_deleted = false").
		Preload("Sections.SubSections", "is_deleted = false").
		First(&course, course.ID)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully", course)
}

// UpdateSection renames a section
func UpdateSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUpdateSection").(*sectionValidator.UpdateSectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var section courseModels.Section
	if err := db.Where("id = ? AND is_deleted = false", reqData.SectionID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	section.SectionName = reqData.SectionName
	if err := db.Save(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error while updating section", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully", section)
}

// DeleteSection soft-deletes a section and its sub-sections
func DeleteSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDeleteSection").(*sectionValidator.DeleteSectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var section courseModels.Section
	if err := db.Where("id = ? AND is_deleted = false", reqData.SectionID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	tx := db.Begin()
	if err := tx.Model(&courseModels.Section{}).Where("id = ?", section.ID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error while deleting section", nil)
	}
	if err := tx.Model(&courseModels.SubSection{}).Where("section_id = ?", section.ID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error while deleting section", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully", nil)
}

// CreateSubSection adds a lecture under a section
func CreateSubSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateSubSection").(*sectionValidator.CreateSubSectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var section courseModels.Section
	if err := db.Where("id = ? AND is_deleted = false", reqData.SectionID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	var count int64
	db.Model(&courseModels.SubSection{}).Where("section_id = ? AND is_deleted = false", section.ID).Count(&count)

	subSection := courseModels.SubSection{
		SectionID:    section.ID,
		Title:        reqData.Title,
		TimeDuration: reqData.TimeDuration,
		Description:  reqData.Description,
		VideoURL:     reqData.VideoURL,
		OrderIndex:   int(count),
	}
	if err := db.Create(&subSection).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error while creating sub-section", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Sub-section created successfully", subSection)
}

// UpdateSubSection updates the provided lecture fields
func UpdateSubSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUpdateSubSection").(*sectionValidator.UpdateSubSectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var subSection courseModels.SubSection
	if err := db.Where("id = ? AND is_deleted = false", reqData.SubSectionID).First(&subSection).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sub-section not found!", nil)
	}

	if reqData.Title != "" {
		subSection.Title = reqData.Title
	}
	if reqData.TimeDuration != "" {
		subSection.TimeDuration = reqData.TimeDuration
	}
	if reqData.Description != "" {
		subSection.Description = reqData.Description
	}
	if reqData.VideoURL != "" {
		subSection.VideoURL = reqData.VideoURL
	}

	if err := db.Save(&subSection).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error while updating sub-section", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sub-section updated successfully", subSection)
}

// DeleteSubSection soft-deletes a lecture
func DeleteSubSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDeleteSubSection").(*sectionValidator.DeleteSubSectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	result := db.Model(&courseModels.SubSection{}).
		Where("id = ? AND is_deleted = false", reqData.SubSectionID).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error while deleting sub-section", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sub-section not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sub-section deleted successfully", nil)
}
