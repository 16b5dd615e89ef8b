package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/NishantGawd/sj-fitness/internal/config"
	"github.com/NishantGawd/sj-fitness/internal/controller"
	"github.com/NishantGawd/sj-fitness/internal/mailer"
	"github.com/NishantGawd/sj-fitness/internal/razorpay"
	"github.com/NishantGawd/sj-fitness/internal/repository"
	"github.com/NishantGawd/sj-fitness/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting SJ Fitness membership service...")

	if cfg.Razorpay.KeyID == "" {
		log.Println("WARNING: Razorpay Key ID is empty")
	} else {
		log.Printf("Razorpay Key ID: %s", maskString(cfg.Razorpay.KeyID))
	}
	if cfg.Razorpay.KeySecret == "" {
		log.Println("WARNING: Razorpay Key Secret is empty")
	}
	if cfg.Email.APIKey == "" {
		log.Println("WARNING: MailerSend API key is empty, receipt emails disabled")
	}

	db, err := setupDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := repository.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	trialRepo := repository.NewTrialRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)

	razorpayClient := razorpay.NewClient(razorpay.Config{
		KeyID:     cfg.Razorpay.KeyID,
		KeySecret: cfg.Razorpay.KeySecret,
	})

	mail := mailer.NewMailer(cfg.Email.APIKey, cfg.Email.FromName, cfg.Email.FromEmail)

	checkoutService := service.NewCheckoutService(razorpayClient, userRepo, paymentRepo, cfg)
	paymentService := service.NewPaymentService(
		cfg.Razorpay.KeySecret,
		cfg.Razorpay.WebhookSecret,
		ledgerRepo,
		paymentRepo,
		mail,
	)
	trialService := service.NewTrialService(userRepo, trialRepo)
	reminderService := service.NewReminderService(razorpayClient, mail, cfg)

	checkoutController := controller.NewCheckoutController(checkoutService)
	paymentController := controller.NewPaymentController(paymentService)
	webhookController := controller.NewWebhookController(paymentService)
	trialController := controller.NewTrialController(trialService)
	emailController := controller.NewEmailController(mail)
	reminderController := controller.NewReminderController(reminderService)
	membershipController := controller.NewMembershipController(membershipRepo)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	checkoutController.RegisterRoutes(e)
	paymentController.RegisterRoutes(e)
	webhookController.RegisterRoutes(e)
	trialController.RegisterRoutes(e)
	emailController.RegisterRoutes(e)
	reminderController.RegisterRoutes(e)
	membershipController.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "healthy"})
	})

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil {
			log.Printf("Server shutdown: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}

func setupDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("mysql", cfg.DB.GetDSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxIdleConns(5)
	db.SetMaxOpenConns(20)
	db.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func maskString(s string) string {
	if len(s) <= 2 {
		return "**"
	}
	return s[:2] + "..." + s[len(s)-2:]
}
