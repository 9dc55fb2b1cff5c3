package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/kineticdrop/portfolio-api/application/port/inbound"
	"github.com/kineticdrop/portfolio-api/application/port/outbound"
	"github.com/kineticdrop/portfolio-api/application/usecase"
	"github.com/kineticdrop/portfolio-api/domain/entity"
	"github.com/kineticdrop/portfolio-api/infrastructure/config"
	httpserver "github.com/kineticdrop/portfolio-api/infrastructure/http"
	"github.com/kineticdrop/portfolio-api/infrastructure/http/handler"
	"github.com/kineticdrop/portfolio-api/infrastructure/http/middleware"
	"github.com/kineticdrop/portfolio-api/infrastructure/persistence/postgres"
	"github.com/kineticdrop/portfolio-api/infrastructure/service/logger"
	"github.com/kineticdrop/portfolio-api/infrastructure/service/password"
	"github.com/kineticdrop/portfolio-api/infrastructure/service/ratelimit"
	"github.com/kineticdrop/portfolio-api/infrastructure/service/token"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	structuredLogger := logger.NewStructuredLogger(logger.LoggerConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "portfolio-api",
	})
	structuredLogger.Info(ctx, "Application starting", map[string]interface{}{
		"env": cfg.Environment,
	})

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		structuredLogger.Error(ctx, "Failed to open database", err, nil)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		structuredLogger.Error(ctx, "Failed to ping database", err, nil)
		os.Exit(1)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	rateLimitLogger := logrus.New()
	rateLimitService, err := ratelimit.NewRateLimitService(ratelimit.RateLimitConfig{
		Enabled:  cfg.RateLimitEnabled,
		RedisURL: cfg.RedisURL,
	}, rateLimitLogger)
	if err != nil {
		structuredLogger.Error(ctx, "Failed to initialize rate limiting", err, nil)
		os.Exit(1)
	}

	tokenService, err := token.NewJWTService(cfg)
	if err != nil {
		structuredLogger.Error(ctx, "Failed to initialize token service", err, nil)
		os.Exit(1)
	}
	passwordService := password.NewBcryptPasswordService(0)

	userRepo := postgres.NewUserRepository(db)
	skillRepo := postgres.NewSkillRepository(db)
	projectRepo := postgres.NewProjectRepository(db)
	experienceRepo := postgres.NewExperienceRepository(db)
	certificateRepo := postgres.NewCertificateRepository(db)
	messageRepo := postgres.NewMessageRepository(db)

	if err := bootstrapAdmin(ctx, cfg, userRepo, passwordService, structuredLogger); err != nil {
		structuredLogger.Error(ctx, "Failed to bootstrap admin account", err, nil)
		os.Exit(1)
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, tokenService, passwordService, structuredLogger)
	skillUseCase := usecase.NewSkillUseCase(skillRepo)
	projectUseCase := usecase.NewProjectUseCase(projectRepo)
	experienceUseCase := usecase.NewExperienceUseCase(experienceRepo)
	certificateUseCase := usecase.NewCertificateUseCase(certificateRepo)
	messageUseCase := usecase.NewMessageUseCase(messageRepo, structuredLogger)

	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(rateLimitService, structuredLogger)
	cookies := handler.NewCookiePolicy(cfg)

	server := httpserver.NewServer(cfg, structuredLogger, httpserver.Handlers{
		Auth:        handler.NewAuthHandler(authUseCase, cookies),
		Skill:       handler.NewSkillHandler(skillUseCase),
		Project:     handler.NewProjectHandler(projectUseCase),
		Experience:  handler.NewExperienceHandler(experienceUseCase),
		Certificate: handler.NewCertificateHandler(certificateUseCase),
		Message:     handler.NewMessageHandler(messageUseCase),
	}, authMiddleware, rateLimitMiddleware)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			structuredLogger.Error(ctx, "HTTP server failed", err, nil)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		structuredLogger.Error(ctx, "Graceful shutdown failed", err, nil)
		os.Exit(1)
	}

	structuredLogger.Info(ctx, "Server stopped", nil)
}

// bootstrapAdmin ensures the single admin account exists. A concurrent
// insert of the same email surfaces as an error rather than being
// silently swallowed.
func bootstrapAdmin(
	ctx context.Context,
	cfg *config.Config,
	userRepo outbound.UserRepository,
	passwordService inbound.PasswordService,
	log logger.Logger,
) error {
	email := usecase.NormalizeEmail(cfg.AdminEmail)

	_, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		log.Info(ctx, "Admin account already present", map[string]interface{}{})
		return nil
	}
	if !errors.Is(err, outbound.ErrUserNotFound) {
		return err
	}

	hash, err := passwordService.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := entity.NewUser(uuid.New().String(), email, hash)
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	log.Info(ctx, "Admin account created", map[string]interface{}{
		"user_id": admin.ID,
	})
	return nil
}
