package paymentController

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"
	paymentValidator "lms/validators/payment"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-gateway-secret"

type fakeGateway struct {
	failCreate bool
	lastAmount int64
}

func (f *fakeGateway) CreateOrder(amount int64, currency, receipt string, notes map[string]interface{}) (*utils.RazorpayOrder, error) {
	if f.failCreate {
		return nil, fmt.Errorf("gateway unavailable")
	}
	f.lastAmount = amount
	return &utils.RazorpayOrder{
		ID:       "order_test123",
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

func (f *fakeGateway) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return utils.VerifySignature(orderID, paymentID, signature, testSecret)
}

type noopMailer struct{}

func (noopMailer) SendEnrollmentEmail(email, name, courseName string) {}

type apiResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func signPayment(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func setupPaymentTest(t *testing.T) (*fiber.App, *fakeGateway) {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4, Currency: "INR"}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	gateway := &fakeGateway{}
	controller := New(gateway, noopMailer{}, "INR")

	app := fiber.New()
	paymentGroup := app.Group("/payment")
	paymentGroup.Post("/capturePayment",
		middleware.JWTMiddleware, middleware.RequireRole("STUDENT"), paymentValidator.CapturePayment(), controller.CapturePayment)
	paymentGroup.Post("/verifySignature",
		middleware.JWTMiddleware, middleware.RequireRole("STUDENT"), controller.VerifySignature)
	paymentGroup.Post("/purchaseDirectly",
		middleware.JWTMiddleware, middleware.RequireRole("STUDENT"), paymentValidator.Purchase(), controller.PurchaseDirectly)

	return app, gateway
}

func createStudent(t *testing.T, email string) (models.User, string) {
	t.Helper()

	user := models.User{FirstName: "Student", LastName: "One", Email: email, Password: "x", Role: "STUDENT"}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.Role)
	require.NoError(t, err)
	return user, token
}

func createCourse(t *testing.T, name string, price float64) courseModels.Course {
	t.Helper()

	instructor := models.User{FirstName: "Inst", Email: name + "-inst@test.in", Password: "x", Role: "INSTRUCTOR"}
	require.NoError(t, database.Database.Db.Create(&instructor).Error)

	category := models.Category{Name: name + "-cat", Description: "test"}
	require.NoError(t, database.Database.Db.Create(&category).Error)

	course := courseModels.Course{
		CourseName:   name,
		Price:        price,
		Status:       "PUBLISHED",
		InstructorID: instructor.ID,
		CategoryID:   category.ID,
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, apiResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestCapturePaymentCreatesOrder(t *testing.T) {
	app, gateway := setupPaymentTest(t)
	_, token := createStudent(t, "buyer@test.in")
	courseA := createCourse(t, "Go Basics", 499)
	courseB := createCourse(t, "Advanced Go", 999.50)

	resp, parsed := doJSON(t, app, "POST", "/payment/capturePayment", token, fiber.Map{
		"courses": []uint{courseA.ID, courseB.ID},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, parsed.Success)

	// Total is converted to minor units for the gateway
	assert.Equal(t, int64(149850), gateway.lastAmount)
	assert.Equal(t, "order_test123", parsed.Data["orderId"])
	assert.Equal(t, "INR", parsed.Data["currency"])

	// No enrollment happens at capture time
	var count int64
	database.Database.Db.Model(&courseModels.Enrollment{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// The correlation record is persisted
	var order models.PaymentOrder
	require.NoError(t, database.Database.Db.Where("order_id = ?", "order_test123").First(&order).Error)
	assert.Equal(t, models.OrderStatusCreated, order.Status)
}

func TestCapturePaymentUnknownCourse(t *testing.T) {
	app, _ := setupPaymentTest(t)
	_, token := createStudent(t, "buyer2@test.in")

	resp, parsed := doJSON(t, app, "POST", "/payment/capturePayment", token, fiber.Map{
		"courses": []uint{99999},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, parsed.Success)
}

func TestCapturePaymentAlreadyEnrolled(t *testing.T) {
	app, _ := setupPaymentTest(t)
	student, token := createStudent(t, "repeat@test.in")
	course := createCourse(t, "Repeat Course", 100)

	require.NoError(t, database.Database.Db.Create(&courseModels.Enrollment{
		UserID: student.ID, CourseID: course.ID, Status: "ENROLLED",
	}).Error)

	resp, parsed := doJSON(t, app, "POST", "/payment/capturePayment", token, fiber.Map{
		"courses": []uint{course.ID},
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.False(t, parsed.Success)
}

func TestVerifySignatureEnrolls(t *testing.T) {
	app, _ := setupPaymentTest(t)
	student, token := createStudent(t, "verified@test.in")
	course := createCourse(t, "Paid Course", 250)

	signature := signPayment("order_abc", "pay_xyz")

	resp, parsed := doJSON(t, app, "POST", "/payment/verifySignature", token, fiber.Map{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  signature,
		"courses":             []uint{course.ID},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, parsed.Success)

	// Exactly one enrollment and one progress record for the pair
	var enrollments []courseModels.Enrollment
	database.Database.Db.Where("user_id = ? AND course_id = ?", student.ID, course.ID).Find(&enrollments)
	require.Len(t, enrollments, 1)

	var progress []courseModels.CourseProgress
	database.Database.Db.Where("user_id = ? AND course_id = ?", student.ID, course.ID).Find(&progress)
	require.Len(t, progress, 1)
}

func TestVerifySignatureTamperedByte(t *testing.T) {
	app, _ := setupPaymentTest(t)
	student, token := createStudent(t, "tampered@test.in")
	course := createCourse(t, "Locked Course", 250)

	signature := []byte(signPayment("order_abc", "pay_xyz"))
	if signature[0] == 'a' {
		signature[0] = 'b'
	} else {
		signature[0] = 'a'
	}

	resp, parsed := doJSON(t, app, "POST", "/payment/verifySignature", token, fiber.Map{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  string(signature),
		"courses":             []uint{course.ID},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, parsed.Success)
	assert.Equal(t, "Payment Failed!", parsed.Message)

	var count int64
	database.Database.Db.Model(&courseModels.Enrollment{}).Where("user_id = ?", student.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestVerifySignatureMissingFieldsUniformFailure(t *testing.T) {
	app, _ := setupPaymentTest(t)
	_, token := createStudent(t, "missing@test.in")
	course := createCourse(t, "Some Course", 100)

	signature := signPayment("order_abc", "pay_xyz")

	bodies := []fiber.Map{
		{"razorpay_payment_id": "pay_xyz", "razorpay_signature": signature, "courses": []uint{course.ID}},
		{"razorpay_order_id": "order_abc", "razorpay_signature": signature, "courses": []uint{course.ID}},
		{"razorpay_order_id": "order_abc", "razorpay_payment_id": "pay_xyz", "courses": []uint{course.ID}},
		{"razorpay_order_id": "order_abc", "razorpay_payment_id": "pay_xyz", "razorpay_signature": signature},
	}

	// Every failure answers identically, whatever was wrong
	for _, body := range bodies {
		resp, parsed := doJSON(t, app, "POST", "/payment/verifySignature", token, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Payment Failed!", parsed.Message)
	}
}

func TestVerifySignaturePartialEnrollment(t *testing.T) {
	app, _ := setupPaymentTest(t)
	student, token := createStudent(t, "partial@test.in")
	courseA := createCourse(t, "Course A", 100)

	signature := signPayment("order_abc", "pay_xyz")

	resp, parsed := doJSON(t, app, "POST", "/payment/verifySignature", token, fiber.Map{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  signature,
		"courses":             []uint{courseA.ID, 99999},
	})

	// The first course stays enrolled, the missing one fails the batch
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.False(t, parsed.Success)

	var count int64
	database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", student.ID, courseA.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	enrolled, ok := parsed.Data["enrolledCourses"].([]interface{})
	require.True(t, ok)
	assert.Len(t, enrolled, 1)
}

func TestPurchaseDirectlyEnrolls(t *testing.T) {
	app, _ := setupPaymentTest(t)
	student, token := createStudent(t, "instant@test.in")
	course := createCourse(t, "Wallet Course", 300)

	resp, parsed := doJSON(t, app, "POST", "/payment/purchaseDirectly", token, fiber.Map{
		"courseId": course.ID,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, parsed.Success)

	var count int64
	database.Database.Db.Model(&courseModels.CourseProgress{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	// Buying twice is rejected
	resp, parsed = doJSON(t, app, "POST", "/payment/purchaseDirectly", token, fiber.Map{
		"courseId": course.ID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, parsed.Success)
}
