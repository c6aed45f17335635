package main

import (
	"context"
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/config"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/constants"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/database"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/handlers"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/middleware"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/repository"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/services"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/storage"
)

func main() {
	// Load .env if present, then configuration
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	// Object storage client
	objectStorage, err := storage.NewS3Storage(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	imageRepo := repository.NewImageRepository(db)
	authService := services.NewAuthService(userRepo)
	imageService := services.NewImageService(imageRepo, userRepo, objectStorage)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.AdminSecretKey)
	imageHandler := handlers.NewImageHandler(imageService)
	profileHandler := handlers.NewProfileHandler(imageService)
	adminHandler := handlers.NewAdminHandler(imageService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Image Gallery API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public except /me and /role)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/register-admin", authHandler.RegisterAdmin)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.Me)
			auth.GET("/role", middleware.RequireAuth(), authHandler.Role)
		}

		// Image routes (protected)
		images := api.Group("/images")
		images.Use(middleware.RequireAuth())
		{
			images.POST("/upload", imageHandler.Upload)
			images.GET("", imageHandler.List)
			images.DELETE("/delete/:id", imageHandler.SoftDelete)
			images.PUT("/rename/:id", imageHandler.Rename)
			images.GET("/download/:id", imageHandler.Download)
			images.GET("/trash", imageHandler.Trash)
			images.PUT("/trash/restore/:id", imageHandler.Restore)
			images.DELETE("/trash/permanent/:id", imageHandler.PermanentDelete)
		}

		// Profile (protected)
		api.GET("/profile", middleware.RequireAuth(), profileHandler.Get)

		// Admin routes (admin role required)
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
