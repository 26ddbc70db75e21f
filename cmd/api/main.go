package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hossamaboassi/Busylancer/config"
	"github.com/hossamaboassi/Busylancer/internal/delivery/http/api"
	"github.com/hossamaboassi/Busylancer/internal/domain"
	"github.com/hossamaboassi/Busylancer/internal/repository/postgres"
	"github.com/hossamaboassi/Busylancer/internal/usecase"
	"github.com/hossamaboassi/Busylancer/pkg/audit"
	"github.com/hossamaboassi/Busylancer/pkg/database"
	"github.com/hossamaboassi/Busylancer/pkg/email"
	"github.com/hossamaboassi/Busylancer/pkg/logger"
	"github.com/hossamaboassi/Busylancer/pkg/redis"
	"github.com/hossamaboassi/Busylancer/pkg/token"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init()
	logger.Log.Info("Starting Busylancer backend", "port", cfg.Port, "env", cfg.Env)

	auditLog := audit.Init(cfg.AppName, cfg.Env)
	defer auditLog.Sync()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; in-memory fallback when absent)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		}
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	employerRepo := postgres.NewEmployerRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	dashboardRepo := postgres.NewDashboardRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - notifications will be skipped")
	}

	// 7. Setup Token Manager
	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)

	// 8. Setup UseCases
	paging := domain.Paging{Default: cfg.DefaultPageSize, Max: cfg.MaxPageSize}
	authUC := usecase.NewAuthUsecase(userRepo, candidateRepo, employerRepo, tokens, emailService)
	jobUC := usecase.NewJobUsecase(jobRepo, employerRepo, paging)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, paging)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, candidateRepo, employerRepo, userRepo, emailService, paging)
	skillUC := usecase.NewSkillUsecase(skillRepo, paging)
	dashboardUC := usecase.NewDashboardUsecase(dashboardRepo, applicationRepo, candidateRepo, employerRepo)

	// 9. Setup Router
	router := api.NewRouter(api.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		CandidateUC:   candidateUC,
		ApplicationUC: applicationUC,
		SkillUC:       skillUC,
		DashboardUC:   dashboardUC,
		Tokens:        tokens,
		Config:        cfg,
		Paging:        paging,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
