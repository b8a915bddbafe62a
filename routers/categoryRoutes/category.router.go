package categoryRoutes

import (
	categoryController "lms/controllers/category"
	"lms/middleware"
	categoryValidator "lms/validators/category"

	"github.com/gofiber/fiber/v2"
)

func SetupCategoryRoutes(app *fiber.App) {
	categoryGroup := app.Group("/category")

	categoryGroup.Post("/create",
		middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), categoryValidator.Create(), categoryController.CreateCategory)
	categoryGroup.Get("/all", categoryController.ShowAllCategories)
	categoryGroup.Post("/details", categoryValidator.Details(), categoryController.CategoryPageDetails)
}
