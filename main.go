package main

import (
	"edtech/config"
	paymentController "edtech/controllers/payment"
	"edtech/database"
	"edtech/payment"
	authRoutes "edtech/routers/authRoutes"
	courseRoutes "edtech/routers/courseRoutes"
	paymentRoutes "edtech/routers/paymentRoutes"
	profileRoutes "edtech/routers/profileRoutes"
	"edtech/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

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

	// Payment workflow wiring: every collaborator is constructed here and
	// injected, nothing reaches for ambient handles
	cfg := config.AppConfig
	provider := payment.NewClient(cfg.RazorpayApiURL, cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	enroller := payment.NewEnroller(database.Database.Db, payment.EmailNotifier{})
	paymentService := payment.NewService(
		database.Database.Db,
		provider,
		payment.NewVerifier(cfg.RazorpayKeySecret),
		payment.NewVerifier(cfg.RazorpayWebhookSecret),
		enroller,
	)

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	profileRoutes.SetupProfileRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app, paymentController.NewController(paymentService))

	// Periodic cleanup of expired OTP rows
	utils.InitializeOTPScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
