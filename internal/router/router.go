package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pixgram/backend/internal/auth"
	"github.com/pixgram/backend/internal/handlers"
	"github.com/pixgram/backend/internal/models"
	"github.com/pixgram/backend/internal/repositories"
	"github.com/pixgram/backend/internal/services"
	"github.com/pixgram/backend/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware. CORS is credentialed
// because the token travels in a cross-site cookie.
func SetupMiddleware(e *echo.Echo, cfg *config.Config) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORSWithConfig(eMiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowCredentials: true,
	}))
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, pgdb *gorm.DB, mgClient *mongo.Client, logger *zap.Logger) error {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.Person{},
		&models.Follow{},
		&models.Like{},
		&models.Comment{},
		&models.Notification{},
	)
	if err != nil {
		return err
	}
	logger.Info("PostgreSQL auto-migrations completed")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"message": "pixgram api"})
	})

	// --- Repositories ---
	personRepo := repositories.NewPostgresPersonRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	postRepo := repositories.NewMongoPostRepository(mgClient.Database("pixgram"))

	// --- Services ---
	graphService := services.NewGraphService(personRepo, followRepo, likeRepo, postRepo, notificationRepo, logger)
	contentService := services.NewContentService(personRepo, postRepo, commentRepo, likeRepo, notificationRepo, logger)
	feedService := services.NewFeedService(personRepo, followRepo, likeRepo, commentRepo, postRepo, services.FeedConfig{
		PreviewPageSize:  cfg.PreviewPageSize,
		CommentsPageSize: cfg.CommentsPageSize,
		HomePageSize:     cfg.HomePageSize,
	})

	// --- Token gate ---
	// The gate runs on every request; it parses and verifies the cookie if
	// present. RequireUser on the gated group rejects anonymous requests.
	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	e.Use(auth.Gate(tokenManager))

	// --- Public routes ---
	authHandler := handlers.NewAuthHandler(personRepo, tokenManager)
	authHandler.RegisterAuthRoutes(e)

	personHandler := handlers.NewPersonHandler(personRepo, graphService)
	personHandler.RegisterPublicRoutes(e)

	// --- Gated routes ---
	gated := e.Group("", auth.RequireUser())
	personHandler.RegisterPersonRoutes(gated)

	postHandler := handlers.NewPostHandler(contentService, graphService, feedService)
	postHandler.RegisterPostRoutes(gated)

	commentHandler := handlers.NewCommentHandler(contentService)
	commentHandler.RegisterCommentRoutes(gated)

	notificationHandler := handlers.NewNotificationHandler(notificationRepo, personRepo)
	notificationHandler.RegisterNotificationRoutes(gated)

	logger.Info("All routes configured")
	return nil
}
