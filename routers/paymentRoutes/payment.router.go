package paymentRoutes

import (
	paymentController "lms/controllers/payment"
	"lms/middleware"
	paymentValidator "lms/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App, controller *paymentController.PaymentController) {
	paymentGroup := app.Group("/payment")

	paymentGroup.Post("/capturePayment",
		middleware.JWTMiddleware, middleware.RequireRole("STUDENT"), paymentValidator.CapturePayment(), controller.CapturePayment)
	paymentGroup.Post("/verifySignature",
		middleware.JWTMiddleware, middleware.RequireRole("STUDENT"), controller.VerifySignature)
	paymentGroup.Post("/purchaseDirectly",
		middleware.JWTMiddleware, middleware.RequireRole("STUDENT"), paymentValidator.Purchase(), controller.PurchaseDirectly)
}
