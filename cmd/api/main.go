package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/egeorganic/site-api/internal/config"
	"github.com/egeorganic/site-api/internal/database"
	"github.com/egeorganic/site-api/internal/handler"
	"github.com/egeorganic/site-api/internal/middleware"
	"github.com/egeorganic/site-api/internal/models"
	"github.com/egeorganic/site-api/internal/repository"
	"github.com/egeorganic/site-api/internal/router"
	"github.com/egeorganic/site-api/internal/service"
	mailerresend "github.com/egeorganic/site-api/pkg/mailer/resend"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.ContactMessage{}, &models.NewsletterSubscription{}, &models.LeadInquiry{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	var natsConn *nats.Conn
	if cfg.NATSURL != "" {
		natsConn, err = database.ConnectNATS(cfg.NATSURL)
		if err != nil {
			log.Fatalf("failed to connect to nats: %v", err)
		}
		defer natsConn.Close()
	}

	sender := mailerresend.New(mailerresend.Config{
		APIKey:      cfg.ResendAPIKey,
		SenderEmail: cfg.FromEmail,
		SenderName:  cfg.FromName,
	})

	validate := service.NewValidator()
	events := service.NewEventPublisher(natsConn, "ege", logger)

	contactRepo := repository.NewContactRepository(db)
	newsletterRepo := repository.NewNewsletterRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	contactService := service.NewContactService(contactRepo, sender, validate, events, cfg.AdminEmail, logger)
	newsletterService := service.NewNewsletterService(newsletterRepo, sender, validate, events, logger)
	leadService := service.NewLeadService(leadRepo, sender, validate, events, cfg.AdminEmail, logger)
	adminService := service.NewAdminSubmissionService(contactRepo, newsletterRepo, leadRepo, redisClient, cfg.StatsCacheTTL, logger)

	contactHandler := handler.NewContactHandler(contactService, logger)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService, logger)
	leadHandler := handler.NewLeadHandler(leadService, logger)
	adminHandler := handler.NewAdminSubmissionHandler(adminService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		ContactHandler:    contactHandler,
		NewsletterHandler: newsletterHandler,
		LeadHandler:       leadHandler,
		AdminHandler:      adminHandler,
		JWTMiddleware:     middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
