package profileController

import (
	"io"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	profileValidator "lms/validators/profile"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Uploader pushes images to the asset host and returns the hosted URL
type Uploader interface {
	UploadImage(filename string, file io.Reader) (string, error)
}

// ProfileController manages the caller's account and profile record
type ProfileController struct {
	Uploader Uploader
}

func New(uploader Uploader) *ProfileController {
	return &ProfileController{Uploader: uploader}
}

// UpdateProfile applies the provided profile fields, leaving the rest alone
func (p *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedProfileUpdate").(*profileValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var profile models.Profile
	if err := db.Where("id = ?", user.ProfileID).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}

	if reqData.FirstName != "" {
		user.FirstName = reqData.FirstName
	}
	if reqData.LastName != "" {
		user.LastName = reqData.LastName
	}
	if reqData.DateOfBirth != "" {
		profile.DateOfBirth = reqData.DateOfBirth
	}
	if reqData.About != "" {
		profile.About = reqData.About
	}
	if reqData.ContactNumber != "" {
		profile.ContactNumber = reqData.ContactNumber
	}
	if reqData.Gender != "" {
		profile.Gender = reqData.Gender
	}

	tx := db.Begin()
	if err := tx.Save(&user).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}
	if err := tx.Save(&profile).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile Updated Successfully", profile)
}

// GetUserDetails returns the caller's account with its profile
func (p *ProfileController) GetUserDetails(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = false", userID).
		Preload("Profile").
		First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User Details fetched", user)
}

// DeleteAccount removes the caller's profile, unenrolls them from every
// course and soft-deletes the account
func (p *ProfileController) DeleteAccount(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No user registered using this id", nil)
	}

	tx := db.Begin()
	if err := tx.Model(&models.Profile{}).Where("id = ?", user.ProfileID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error while deleting profile", nil)
	}
	// Unenroll from every course; the progress records go with the
	// enrollments
	if err := tx.Model(&courseModels.Enrollment{}).Where("user_id = ?", user.ID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error while deleting profile", nil)
	}
	if err := tx.Model(&courseModels.CourseProgress{}).Where("user_id = ?", user.ID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error while deleting profile", nil)
	}
	if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error while deleting profile", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully", nil)
}

// UpdateDisplayPicture replaces the caller's avatar with an uploaded image
func (p *ProfileController) UpdateDisplayPicture(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	fileHeader, err := c.FormFile("displayPicture")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Display picture is required!", nil)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read display picture!", nil)
	}
	defer file.Close()

	imageURL, err := p.Uploader.UploadImage(fileHeader.Filename, file)
	if err != nil {
		log.Printf("Error uploading display picture: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload image!", nil)
	}

	db := database.Database.Db
	if err := db.Model(&models.User{}).Where("id = ? AND is_deleted = false", userID).Update("image", imageURL).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update image!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Image Updated successfully", fiber.Map{
		"image": imageURL,
	})
}

// GetEnrolledCourses lists the caller's enrollments with per-course
// completion percentage
func (p *ProfileController) GetEnrolledCourses(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	db := database.Database.Db

	var enrollments []courseModels.Enrollment
	if err := db.Where("user_id = ? AND is_deleted = false", userID).
		Preload("Course").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrolled courses!", nil)
	}

	type enrolledCourse struct {
		Course             courseModels.Course `json:"course"`
		CompletedLectures  int64               `json:"completedLectures"`
		TotalLectures      int64               `json:"totalLectures"`
		ProgressPercentage float64             `json:"progressPercentage"`
	}

	result := make([]enrolledCourse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var progress courseModels.CourseProgress
		var completed int64
		if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, enrollment.CourseID).First(&progress).Error; err == nil {
			db.Model(&courseModels.CompletedSubSection{}).Where("course_progress_id = ?", progress.ID).Count(&completed)
		}

		var total int64
		db.Model(&courseModels.SubSection{}).
			Joins("JOIN sections ON sections.id = sub_sections.section_id").
			Where("sections.course_id = ? AND sub_sections.is_deleted = false AND sections.is_deleted = false", enrollment.CourseID).
			Count(&total)

		percentage := float64(0)
		if total > 0 {
			percentage = float64(completed) / float64(total) * 100
		}

		result = append(result, enrolledCourse{
			Course:             enrollment.Course,
			CompletedLectures:  completed,
			TotalLectures:      total,
			ProgressPercentage: percentage,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched", result)
}
