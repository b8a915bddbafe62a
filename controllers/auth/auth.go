package authController

import (
	"fmt"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	authValidator "lms/validators/auth"
	"log"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Mailer delivers signup verification codes; delivery is best effort
type Mailer interface {
	SendOTPEmail(email, code string)
}

// AuthController handles signup, OTP verification and login
type AuthController struct {
	Mailer Mailer
}

func New(mailer Mailer) *AuthController {
	return &AuthController{Mailer: mailer}
}

const otpTTL = 5 * time.Minute

// SendOTP issues a signup verification code to an unregistered email
func (a *AuthController) SendOTP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSendOTP").(*authValidator.SendOTPRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		log.Printf("Error generating OTP: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	otp := models.OTP{
		Email:     reqData.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := db.Create(&otp).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send OTP!", nil)
	}

	a.Mailer.SendOTPEmail(reqData.Email, code)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP sent successfully!", nil)
}

// Signup creates a new account after checking the emailed OTP
func (a *AuthController) Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	var otp models.OTP
	err := db.Where("email = ? AND code = ? AND is_used = false AND expires_at > ?",
		reqData.Email, reqData.OTP, time.Now()).
		Order("created_at DESC").
		First(&otp).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid or expired OTP!", nil)
	}
	db.Model(&otp).Update("is_used", true)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	role := reqData.AccountType
	if role == "" {
		role = "STUDENT"
	}

	tx := db.Begin()

	profile := models.Profile{}
	if err := tx.Create(&profile).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	newUser := models.User{
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Email:     reqData.Email,
		Password:  string(hashedPassword),
		Role:      role,
		ProfileID: profile.ID,
		Image: fmt.Sprintf("https://api.dicebear.com/5.x/initials/svg?seed=%s",
			url.QueryEscape(reqData.FirstName+" "+reqData.LastName)),
		IsEmailVerified: true,
	}
	if err := tx.Create(&newUser).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}
	tx.Commit()

	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

// Login checks credentials and issues a bearer token
func (a *AuthController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	db.Model(&user).Update("last_login", time.Now())

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"token": token,
		"user":  user,
	})
}
