package paymentController

import (
	"encoding/json"
	"fmt"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"
	paymentValidator "lms/validators/payment"
	"log"
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Gateway creates orders on the payment processor and checks callback
// signatures
type Gateway interface {
	CreateOrder(amount int64, currency, receipt string, notes map[string]interface{}) (*utils.RazorpayOrder, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
}

// Mailer sends the enrollment confirmation; delivery is best effort
type Mailer interface {
	SendEnrollmentEmail(email, name, courseName string)
}

// PaymentController drives the order -> verification -> enrollment flow
type PaymentController struct {
	Gateway  Gateway
	Mailer   Mailer
	Currency string
}

func New(gateway Gateway, mailer Mailer, currency string) *PaymentController {
	return &PaymentController{Gateway: gateway, Mailer: mailer, Currency: currency}
}

type verifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	Courses           []uint `json:"courses"`
}

// CapturePayment validates the cart and creates a gateway order for the
// total. No local enrollment state changes here.
func (p *PaymentController) CapturePayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Please login first!", nil)
	}

	reqData, ok := c.Locals("validatedCapture").(*paymentValidator.CapturePaymentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var total float64
	for _, courseID := range reqData.Courses {
		var course courseModels.Course
		if err := db.Where("id = ? AND is_deleted = false AND status = ?", courseID, "PUBLISHED").First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
		}

		var existing courseModels.Enrollment
		if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).First(&existing).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already paid for this course", nil)
		}

		total += course.Price
	}

	amount := int64(math.Round(total * 100)) // gateway wants minor units
	receipt := uuid.NewString()

	order, err := p.Gateway.CreateOrder(amount, p.Currency, receipt, map[string]interface{}{
		"courses": reqData.Courses,
		"userId":  userID,
	})
	if err != nil {
		log.Printf("Error while initiating payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Error while initiating payment", nil)
	}

	notes, _ := json.Marshal(fiber.Map{"courses": reqData.Courses})
	record := models.PaymentOrder{
		OrderID:  order.ID,
		Receipt:  receipt,
		UserID:   userID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Notes:    notes,
		Status:   models.OrderStatusCreated,
	}
	if err := db.Create(&record).Error; err != nil {
		log.Printf("Error saving payment order %s: %v", order.ID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment initiated", fiber.Map{
		"orderId":  order.ID,
		"currency": order.Currency,
		"amount":   order.Amount,
	})
}

// VerifySignature recomputes the expected payment signature and enrolls the
// student only on an exact match. Every failure path answers the same way so
// a caller learns nothing about which input was wrong.
func (p *PaymentController) VerifySignature(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return paymentFailed(c)
	}

	reqData := new(verifyRequest)
	if err := c.BodyParser(reqData); err != nil {
		return paymentFailed(c)
	}

	if reqData.RazorpayOrderID == "" || reqData.RazorpayPaymentID == "" ||
		reqData.RazorpaySignature == "" || len(reqData.Courses) == 0 {
		return paymentFailed(c)
	}

	if !p.Gateway.VerifyPaymentSignature(reqData.RazorpayOrderID, reqData.RazorpayPaymentID, reqData.RazorpaySignature) {
		return paymentFailed(c)
	}

	db := database.Database.Db
	if err := db.Model(&models.PaymentOrder{}).
		Where("order_id = ?", reqData.RazorpayOrderID).
		Update("status", models.OrderStatusPaid).Error; err != nil {
		log.Printf("Error marking order %s paid: %v", reqData.RazorpayOrderID, err)
	}

	enrolled, err := p.enrollStudents(reqData.Courses, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), fiber.Map{
			"enrolledCourses": enrolled,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Signature Verified and Course Added", fiber.Map{
		"enrolledCourses": enrolled,
	})
}

// PurchaseDirectly enrolls the caller into a single course without the
// gateway round trip; the client settles through the wallet beforehand
func (p *PaymentController) PurchaseDirectly(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Please login first!", nil)
	}

	reqData, ok := c.Locals("validatedPurchase").(*paymentValidator.PurchaseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if _, err := p.enrollStudents([]uint{reqData.CourseID}, userID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course purchased successfully!", nil)
}

// enrollStudents enrolls the user into each course in order. A failure stops
// the remaining list; courses enrolled before the failure stay enrolled.
// Returns the ids that were enrolled.
func (p *PaymentController) enrollStudents(courseIDs []uint, userID uint) ([]uint, error) {
	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return nil, fmt.Errorf("user not found")
	}

	enrolled := make([]uint, 0, len(courseIDs))
	for _, courseID := range courseIDs {
		var course courseModels.Course
		if err := db.Where("id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
			return enrolled, fmt.Errorf("course %d not found", courseID)
		}

		var existing courseModels.Enrollment
		if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).First(&existing).Error; err == nil {
			return enrolled, fmt.Errorf("already enrolled in course %d", courseID)
		}

		// Enrollment and its progress record are created together; one
		// cannot exist without the other.
		tx := db.Begin()
		enrollment := courseModels.Enrollment{
			UserID:   userID,
			CourseID: courseID,
			Status:   "ENROLLED",
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			tx.Rollback()
			return enrolled, fmt.Errorf("failed to enroll in course %d", courseID)
		}

		progress := courseModels.CourseProgress{
			UserID:   userID,
			CourseID: courseID,
		}
		if err := tx.Create(&progress).Error; err != nil {
			tx.Rollback()
			return enrolled, fmt.Errorf("failed to enroll in course %d", courseID)
		}
		tx.Commit()

		enrolled = append(enrolled, courseID)
		p.Mailer.SendEnrollmentEmail(user.Email, user.FirstName, course.CourseName)
	}

	return enrolled, nil
}

func paymentFailed(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment Failed!", nil)
}
