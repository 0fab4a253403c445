package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskforge/taskforge/config"
	"taskforge/taskforge/database"
	"taskforge/taskforge/middleware"
	"taskforge/taskforge/routes"
	"taskforge/taskforge/services"
	"taskforge/taskforge/utils/cache"
	"taskforge/taskforge/utils/mail"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	var mailer mail.Mailer
	if cfg.SMTPUser != "" {
		mailer = mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	} else {
		log.Println("SMTP_USER not set, email notifications are disabled")
		mailer = mail.NoopMailer{}
	}

	categoryCache := cache.New(time.Duration(cfg.CacheTTLSeconds) * time.Second)

	// Initialize services
	authService := services.NewAuthService(cfg.JWTSecret, cfg.JWTExpirationHours)
	services.AuthServiceInstance = authService

	userService := services.NewUserService(authService, mailer)
	services.UserServiceInstance = userService

	projectService := services.NewProjectService(mailer)
	services.ProjectServiceInstance = projectService

	categoryService := services.NewCategoryService(categoryCache)
	services.CategoryServiceInstance = categoryService

	notificationService := services.NewNotificationService(mailer)
	services.NotificationServiceInstance = notificationService

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Task Management API is running"})
	})

	// Public routes
	routes.RegisterAuthRoutes(router, db, authService, userService, cfg.UploadDir)
	routes.RegisterPublicTaskRoutes(router, db, services.TaskServiceInstance)

	// Protected routes
	protected := router.Group("/", middleware.AuthMiddleware(authService))
	routes.RegisterUserRoutes(protected, db, userService)
	routes.RegisterProjectRoutes(protected, db, projectService)
	routes.RegisterTaskRoutes(protected, db, services.TaskServiceInstance, notificationService, cfg.UploadDir)
	routes.RegisterCategoryRoutes(protected, db, categoryService)
	routes.RegisterCommentRoutes(protected, db, services.CommentServiceInstance)
	routes.RegisterStatsRoutes(protected, db, services.StatsServiceInstance)
	routes.RegisterNotificationRoutes(protected, db, notificationService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		db.Close()
		os.Exit(0)
	}()

	log.Printf("API server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
