package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"flexicoach/internal/config"
	"flexicoach/internal/database"
	"flexicoach/internal/handlers"
	"flexicoach/internal/logger"
	"flexicoach/internal/middleware"
	"flexicoach/internal/services"
	"flexicoach/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "flexicoach/internal/docs" // Import swagger docs
)

// @title           FlexiCoach API
// @version         1.0
// @description     FlexiCoach analyzes bank transaction exports into behavioral spending insights, personalized savings challenges, and an AI financial coach.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Monetary fields serialize as plain JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	normalizerService := services.NewNormalizerService()
	categorizerService := services.NewCategorizerService()
	aggregatorService := services.NewAggregatorService()
	scorerService := services.NewScorerService()
	templateService := services.NewTemplateService()
	challengeService := services.NewChallengeService(db)
	profileService := services.NewProfileService(
		normalizerService, categorizerService, aggregatorService,
		scorerService, templateService, challengeService,
	)
	coachService, err := services.NewCoachService(
		context.Background(), appConfig.CoachAPIKey, appConfig.CoachModel, appConfig.CoachTimeout,
	)
	if err != nil {
		return fmt.Errorf("failed to create coach service: %w", err)
	}

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(profileService)
	chatHandler := handlers.NewChatHandler(coachService)
	challengeHandler := handlers.NewChallengeHandler(challengeService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(handlers.NotFound)

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Analysis and coaching
	v1.POST("/analyze", analyzeHandler.Analyze)
	v1.POST("/chat", chatHandler.Chat)

	// Challenge routes
	challenges := v1.Group("/users/:user_id/challenges")
	challenges.GET("", challengeHandler.ListChallenges)
	challenges.GET("/history", challengeHandler.ChallengeHistory)
	challenges.POST("/:challenge_id/accept", challengeHandler.AcceptChallenge)
	challenges.PUT("/:challenge_id/progress", challengeHandler.UpdateProgress)

	log.Infof("Starting FlexiCoach backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
