package router

import (
	"log"

	"github.com/Prajjwal2051/Viewly-sub001/internal/handlers"
	"github.com/Prajjwal2051/Viewly-sub001/internal/middleware"
	"github.com/Prajjwal2051/Viewly-sub001/internal/models"
	"github.com/Prajjwal2051/Viewly-sub001/internal/repositories"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Video{},
		&models.Comment{},
		&models.Tweet{},
		&models.Subscription{},
		&models.Like{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	videoRepo := repositories.NewPostgresVideoRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	tweetRepo := repositories.NewPostgresTweetRepository(pgdb)
	subscriptionRepo := repositories.NewPostgresSubscriptionRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	dashboardRepo := repositories.NewPostgresDashboardRepository(pgdb)
	watchEventRepo := repositories.NewMongoWatchEventRepository(mgClient.Database("viewly"))

	// --- Unprotected registration route ---
	authGroup := e.Group("/api/v1/auth")
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// User profile routes
	userHandler.RegisterProfileRoutes(api)
	log.Println("User profile routes configured.")

	// Relationship routes (subscription and like toggles + edge listings)
	relationshipHandler := handlers.NewRelationshipHandler(
		subscriptionRepo, likeRepo, userRepo, videoRepo, commentRepo, tweetRepo, notificationRepo)
	relationshipHandler.RegisterRelationshipRoutes(api)
	log.Println("Relationship routes configured.")

	// Video routes
	videoHandler := handlers.NewVideoHandler(videoRepo, userRepo, subscriptionRepo, notificationRepo, watchEventRepo)
	videoHandler.RegisterVideoRoutes(api)
	log.Println("Video routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentRepo, videoRepo, userRepo, notificationRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Tweet routes
	tweetHandler := handlers.NewTweetHandler(tweetRepo)
	tweetHandler.RegisterTweetRoutes(api)
	log.Println("Tweet routes configured.")

	// Dashboard routes
	dashboardHandler := handlers.NewDashboardHandler(dashboardRepo, subscriptionRepo, watchEventRepo)
	dashboardHandler.RegisterDashboardRoutes(api)
	log.Println("Dashboard routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
}
