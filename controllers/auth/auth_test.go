package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"lms/config"
	authController "lms/controllers/auth"
	"lms/database"
	"lms/models"
	"lms/routers/authRoutes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type captureMailer struct {
	lastEmail string
	lastCode  string
}

func (m *captureMailer) SendOTPEmail(email, code string) {
	m.lastEmail = email
	m.lastCode = code
}

type apiResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func setupAuthTest(t *testing.T) (*fiber.App, *captureMailer) {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4, Currency: "INR"}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	mailer := &captureMailer{}
	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, authController.New(mailer))

	return app, mailer
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, apiResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestSignupFlow(t *testing.T) {
	app, mailer := setupAuthTest(t)

	// Request a signup code
	resp, parsed := doJSON(t, app, "POST", "/auth/sendotp", fiber.Map{"email": "new@test.in"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, parsed.Success)
	require.Equal(t, "new@test.in", mailer.lastEmail)
	require.Len(t, mailer.lastCode, 6)

	// Sign up with the emailed code
	resp, parsed = doJSON(t, app, "POST", "/auth/signup", fiber.Map{
		"firstName":       "New",
		"lastName":        "Student",
		"email":           "new@test.in",
		"password":        "secret123",
		"confirmPassword": "secret123",
		"otp":             mailer.lastCode,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, parsed.Success)

	var user models.User
	require.NoError(t, database.Database.Db.Where("email = ?", "new@test.in").First(&user).Error)
	assert.Equal(t, "STUDENT", user.Role)
	assert.NotZero(t, user.ProfileID)
	assert.NotEqual(t, "secret123", user.Password)

	// Login with the new credentials
	resp, parsed = doJSON(t, app, "POST", "/auth/login", fiber.Map{
		"email":    "new@test.in",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, parsed.Success)
	assert.NotEmpty(t, parsed.Data["token"])
}

func TestSignupRejectsBadOTP(t *testing.T) {
	app, mailer := setupAuthTest(t)

	doJSON(t, app, "POST", "/auth/sendotp", fiber.Map{"email": "bad@test.in"})

	code := "000000"
	if mailer.lastCode == code {
		code = "000001"
	}

	resp, parsed := doJSON(t, app, "POST", "/auth/signup", fiber.Map{
		"firstName":       "Bad",
		"lastName":        "Code",
		"email":           "bad@test.in",
		"password":        "secret123",
		"confirmPassword": "secret123",
		"otp":             code,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, parsed.Success)

	var count int64
	database.Database.Db.Model(&models.User{}).Where("email = ?", "bad@test.in").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSignupOTPIsSingleUse(t *testing.T) {
	app, mailer := setupAuthTest(t)

	doJSON(t, app, "POST", "/auth/sendotp", fiber.Map{"email": "once@test.in"})
	code := mailer.lastCode

	body := fiber.Map{
		"firstName":       "One",
		"lastName":        "Shot",
		"email":           "once@test.in",
		"password":        "secret123",
		"confirmPassword": "secret123",
		"otp":             code,
	}

	resp, _ := doJSON(t, app, "POST", "/auth/signup", body)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Second attempt fails on the duplicate email before the OTP even matters
	resp, parsed := doJSON(t, app, "POST", "/auth/signup", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.False(t, parsed.Success)
}

func TestSendOTPRejectsRegisteredEmail(t *testing.T) {
	app, _ := setupAuthTest(t)

	user := models.User{FirstName: "Existing", Email: "taken@test.in", Password: "x", Role: "STUDENT"}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	resp, parsed := doJSON(t, app, "POST", "/auth/sendotp", fiber.Map{"email": "taken@test.in"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.False(t, parsed.Success)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app, mailer := setupAuthTest(t)

	doJSON(t, app, "POST", "/auth/sendotp", fiber.Map{"email": "locked@test.in"})
	doJSON(t, app, "POST", "/auth/signup", fiber.Map{
		"firstName":       "Locked",
		"lastName":        "Out",
		"email":           "locked@test.in",
		"password":        "secret123",
		"confirmPassword": "secret123",
		"otp":             mailer.lastCode,
	})

	resp, parsed := doJSON(t, app, "POST", "/auth/login", fiber.Map{
		"email":    "locked@test.in",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, parsed.Success)
	assert.Equal(t, "Invalid email or password!", parsed.Message)
}

func TestSignupValidatesPayload(t *testing.T) {
	app, _ := setupAuthTest(t)

	// Mismatched confirmation never reaches the controller
	resp, parsed := doJSON(t, app, "POST", "/auth/signup", fiber.Map{
		"firstName":       "Bad",
		"lastName":        "Payload",
		"email":           "payload@test.in",
		"password":        "secret123",
		"confirmPassword": "different",
		"otp":             "123456",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, parsed.Success)
}
