package main

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/servicehub/servicehub-api/api/docs"
	"github.com/servicehub/servicehub-api/internal/config"
	"github.com/servicehub/servicehub-api/internal/database"
	"github.com/servicehub/servicehub-api/internal/handlers"
	"github.com/servicehub/servicehub-api/internal/middleware"
	"github.com/servicehub/servicehub-api/internal/repository"
	"github.com/servicehub/servicehub-api/internal/services"
)

//	@title			ServiceHub API
//	@version		1.0
//	@description	Multi-tenant backend: signup, login, organizations and invitations.
//	@BasePath		/

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Structured logger
	var logger *zap.Logger
	if cfg.GinMode == gin.ReleaseMode {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	logger.Info("Database connection established")

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	inviteRepo := repository.NewInvitationRepository(db)

	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo)
	orgService := services.NewOrganizationService(orgRepo)
	inviteService := services.NewInviteService(inviteRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(authService)
	orgHandler := handlers.NewOrganizationHandler(orgService)
	inviteHandler := handlers.NewInviteHandler(inviteService)

	// Initialize Gin router
	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery(logger))

	// Health check endpoint
	r.GET("/health", handlers.Health)

	// Users
	users := r.Group("/users")
	{
		users.POST("/signup", userHandler.Signup)
	}

	// Auth
	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
	}

	// Organizations
	org := r.Group("/organization")
	{
		org.POST("/create", orgHandler.CreateOrganization)
	}

	// Invitations
	r.POST("/invite", inviteHandler.InviteUser)

	// API documentation
	r.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Start server
	addr := ":" + cfg.Port
	logger.Info("Server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
