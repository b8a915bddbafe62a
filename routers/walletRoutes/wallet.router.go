package walletRoutes

import (
	walletController "lms/controllers/wallet"
	"lms/middleware"
	walletValidator "lms/validators/wallet"

	"github.com/gofiber/fiber/v2"
)

func SetupWalletRoutes(app *fiber.App, controller *walletController.WalletController) {
	walletGroup := app.Group("/wallet")

	walletGroup.Post("/add", middleware.JWTMiddleware, walletValidator.Amount(), controller.AddToWallet)
	walletGroup.Get("/balance", middleware.JWTMiddleware, controller.GetWallet)
	walletGroup.Post("/deduct", middleware.JWTMiddleware, walletValidator.Amount(), controller.DeductFromWallet)
	walletGroup.Get("/history", middleware.JWTMiddleware, controller.GetWalletHistory)
	walletGroup.Get("/summary", middleware.JWTMiddleware, controller.GetMonthlySummary)
}
