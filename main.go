package main

import (
	"lms/config"
	authController "lms/controllers/auth"
	contactController "lms/controllers/contact"
	courseController "lms/controllers/course"
	paymentController "lms/controllers/payment"
	profileController "lms/controllers/profile"
	walletController "lms/controllers/wallet"
	"lms/database"
	"lms/routers/authRoutes"
	"lms/routers/categoryRoutes"
	"lms/routers/contactRoutes"
	"lms/routers/courseRoutes"
	"lms/routers/paymentRoutes"
	"lms/routers/profileRoutes"
	"lms/routers/walletRoutes"
	"lms/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// External services are constructed once and handed to the controllers
	// that need them
	gateway := utils.NewRazorpayClient(config.AppConfig.RazorpayKey, config.AppConfig.RazorpaySecret)
	mailer := utils.NewEmailService(config.AppConfig.SendgridApiKey, config.AppConfig.EmailSender)
	uploader := utils.NewCloudinaryUploader(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryApiKey,
		config.AppConfig.CloudinaryApiSecret,
		config.AppConfig.CloudinaryFolder,
	)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, authController.New(mailer))
	profileRoutes.SetupProfileRoutes(app, profileController.New(uploader))
	categoryRoutes.SetupCategoryRoutes(app)
	courseRoutes.SetupCourseRoutes(app, courseController.New(uploader))
	walletRoutes.SetupWalletRoutes(app, walletController.New(mailer))
	paymentRoutes.SetupPaymentRoutes(app, paymentController.New(gateway, mailer, config.AppConfig.Currency))
	contactRoutes.SetupContactRoutes(app, contactController.New(mailer))

	sweeper := utils.StartOrderSweeper()
	defer sweeper.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
