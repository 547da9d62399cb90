package main

import (
	"log"
	"net/http"
	"os"

	_ "podhub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"podhub/internal/auth"
	"podhub/internal/cache"
	"podhub/internal/config"
	"podhub/internal/db"
	"podhub/internal/handler"
	"podhub/internal/mail"
	"podhub/internal/model"
	"podhub/internal/repository"
	"podhub/internal/router"
	"podhub/internal/service"
)

// @title Podhub API
// @version 1.0
// @description Podcast social platform API: accounts, podcasts, likes, comments and follows.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey SessionToken
// @in header
// @name x-access-token
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.PasswordResetToken{},
			&model.Follow{},
			&model.Like{},
			&model.Comment{},
			&model.Podcast{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Podcast{},
		&model.Comment{},
		&model.Like{},
		&model.Follow{},
		&model.PasswordResetToken{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	podcastRepo := repository.NewPodcastRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	socialRepo := repository.NewSocialRepository(gormDB)
	resetTokenRepo := repository.NewResetTokenRepository(gormDB)

	// Initialize auth and mail components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	mailer := mail.NewSMTPMailer(cfg.SMTPAddr, cfg.SMTPFrom)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, cacheClient)
	resetService := service.NewPasswordResetService(userRepo, resetTokenRepo, mailer, cfg.AppBaseURL)
	userService := service.NewUserService(userRepo, podcastRepo, socialRepo, cacheClient)
	podcastService := service.NewPodcastService(podcastRepo, commentRepo, socialRepo, cacheClient)
	socialService := service.NewSocialService(socialRepo, podcastRepo, userRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, resetService)
	userHandler := handler.NewUserHandler(userService)
	podcastHandler := handler.NewPodcastHandler(podcastService)
	socialHandler := handler.NewSocialHandler(socialService)

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		userHandler,
		podcastHandler,
		socialHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
