// @title           Studio Admin Backend API
// @version         1.0.0
// @description     Backend API for a photography studio's admin dashboard: hero carousel, about section, services catalog, portfolio gallery with categories, and contact messages. Media assets live on Cloudinary; rows and auth are delegated to Supabase.

// @contact.name   API Support

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a Supabase JWT token.

package main

import (
	"net/http"
	"net/url"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"studio-admin-backend/docs"
	"studio-admin-backend/internal/cloudinary"
	"studio-admin-backend/internal/config"
	"studio-admin-backend/internal/database"
	"studio-admin-backend/internal/handlers"
	"studio-admin-backend/internal/middleware"
	"studio-admin-backend/internal/services"
	"studio-admin-backend/internal/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	var logger *zap.Logger
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	// Update swagger docs with the deployed host
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required; set it to the Supabase PostgreSQL connection string")
	}

	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to initialize database client", zap.Error(err))
	}
	defer dbClient.Close()

	migrator, err := database.NewMigrator(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("failed to initialize migrator", zap.Error(err))
	}
	if err := migrator.Run(); err != nil {
		migrator.Close()
		logger.Fatal("migration failed", zap.Error(err))
	}
	migrator.Close()

	supabaseClient, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabasePublishableKey)
	if err != nil {
		logger.Fatal("failed to initialize supabase client", zap.Error(err))
	}

	mediaClient := cloudinary.NewClient(
		cfg.CloudinaryAPIBaseURL,
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		logger,
	)

	cleanupService := services.NewCleanupService(dbClient, mediaClient, logger)

	heroHandler := handlers.NewHeroHandler(dbClient, cleanupService, logger)
	aboutHandler := handlers.NewAboutHandler(dbClient, cleanupService, logger)
	servicesHandler := handlers.NewServicesHandler(dbClient, cleanupService, logger)
	categoriesHandler := handlers.NewCategoriesHandler(dbClient)
	portfolioHandler := handlers.NewPortfolioHandler(dbClient, cleanupService, logger)
	messagesHandler := handlers.NewMessagesHandler(dbClient)
	sessionHandler := handlers.NewSessionHandler(supabaseClient)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// Public contact form
	router.POST("/api/v1/contact", messagesHandler.SubmitContactMessage)

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	api.GET("/me", sessionHandler.Me)

	api.GET("/hero-images", heroHandler.ListHeroImages)
	api.POST("/hero-images", heroHandler.CreateHeroImage)
	api.PUT("/hero-images/reorder", heroHandler.ReorderHeroImages)
	api.PUT("/hero-images/:hero_id", heroHandler.UpdateHeroImage)
	api.DELETE("/hero-images/:hero_id", heroHandler.DeleteHeroImage)

	api.GET("/about", aboutHandler.GetAboutSection)
	api.PUT("/about", aboutHandler.UpdateAboutSection)

	api.GET("/services", servicesHandler.ListServices)
	api.POST("/services", servicesHandler.CreateService)
	api.PUT("/services/reorder", servicesHandler.ReorderServices)
	api.GET("/services/:service_id", servicesHandler.GetService)
	api.PUT("/services/:service_id", servicesHandler.UpdateService)
	api.DELETE("/services/:service_id", servicesHandler.DeleteService)

	api.GET("/categories", categoriesHandler.ListCategories)
	api.POST("/categories", categoriesHandler.CreateCategory)
	api.PUT("/categories/:category_id", categoriesHandler.UpdateCategory)
	api.DELETE("/categories/:category_id", categoriesHandler.DeleteCategory)

	api.GET("/portfolio-images", portfolioHandler.ListPortfolioImages)
	api.POST("/portfolio-images", portfolioHandler.CreatePortfolioImage)
	api.PUT("/portfolio-images/reorder", portfolioHandler.ReorderPortfolioImages)
	api.PUT("/portfolio-images/:image_id", portfolioHandler.UpdatePortfolioImage)
	api.DELETE("/portfolio-images/:image_id", portfolioHandler.DeletePortfolioImage)

	api.GET("/messages", messagesHandler.ListContactMessages)
	api.GET("/messages/:message_id", messagesHandler.GetContactMessage)
	api.PATCH("/messages/:message_id/read", messagesHandler.MarkContactMessageRead)
	api.DELETE("/messages/:message_id", messagesHandler.DeleteContactMessage)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
