package app

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"photostudio_backend/internal/config"
	"photostudio_backend/internal/database"
	"photostudio_backend/internal/email"
	"photostudio_backend/internal/handlers"
	"photostudio_backend/internal/logger"
	"photostudio_backend/internal/middleware"
	"photostudio_backend/internal/repositories"
	"photostudio_backend/internal/routes"
	"photostudio_backend/internal/services"
	"photostudio_backend/internal/storage"
	"photostudio_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	db, err := database.Connect(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Database connected")

	ginRouter := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires storage, services and handlers onto a gin engine.
// Tests call it directly with their own config and database handle.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	store, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	var notifier email.BookingNotifier
	if cfg.Email.SMTPHost != "" {
		notifier, err = email.NewSMTPNotifier(email.Config{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUsername,
			Password:    cfg.Email.SMTPPassword,
			FromEmail:   cfg.Email.FromEmail,
			FromName:    cfg.Email.FromName,
			StudioEmail: cfg.Email.StudioEmail,
		})
		if err != nil {
			logger.Fatal("Failed to initialize email notifier", "error", err)
		}
		logger.Info("Email notifier initialized", "host", cfg.Email.SMTPHost)
	} else {
		notifier = email.NoopNotifier{}
		logger.Warn("SMTP not configured, booking notifications disabled")
	}

	appHandlers := initializeHandlers(cfg, store, notifier)

	ginRouter := initializeGinRouter(cfg, db)
	routes.RegisterRoutes(ginRouter, appHandlers, store)

	return ginRouter
}

func initializeHandlers(cfg *config.Config, store storage.Storage, notifier email.BookingNotifier) *handlers.AppHandlers {
	portfolioRepo := repositories.NewPortfolioRepository()
	bookingRepo := repositories.NewBookingRepository()

	portfolioService := services.NewPortfolioService(portfolioRepo)
	bookingService := services.NewBookingService(bookingRepo, notifier)
	uploadService := services.NewUploadService(store, services.UploadConfig{
		MaxFileSize:  cfg.Upload.MaxSize,
		MaxFiles:     cfg.Upload.MaxFiles,
		AllowedTypes: cfg.Upload.AllowedTypes,
		Folder:       cfg.Upload.Folder,
	})
	galleryService := services.NewGalleryService(portfolioRepo, services.GalleryConfig{
		CarouselDir:    cfg.Gallery.CarouselDir,
		CarouselPrefix: cfg.Gallery.CarouselPrefix,
		DefaultImages:  cfg.Gallery.DefaultImages,
	})

	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		Portfolio: handlers.NewPortfolioHandler(base, portfolioService),
		Booking:   handlers.NewBookingHandler(base, bookingService),
		Upload:    handlers.NewUploadHandler(base, uploadService),
		Gallery:   handlers.NewGalleryHandler(base, galleryService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()

	ginRouter.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("Panic recovered", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error",
		})
	}))
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware(cfg.CORS.FrontendURL))
	ginRouter.Use(middleware.DBMiddleware(db))

	return ginRouter
}
