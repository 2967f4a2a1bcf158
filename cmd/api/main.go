package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/promohive/promohive-api/internal/config"
	"github.com/promohive/promohive-api/internal/domain/auth"
	"github.com/promohive/promohive-api/internal/domain/offer"
	"github.com/promohive/promohive-api/internal/domain/reward"
	"github.com/promohive/promohive-api/internal/domain/submission"
	"github.com/promohive/promohive-api/internal/domain/task"
	"github.com/promohive/promohive-api/internal/domain/user"
	"github.com/promohive/promohive-api/internal/domain/wallet"
	"github.com/promohive/promohive-api/internal/middleware"
	"github.com/promohive/promohive-api/internal/pkg/database"
	"github.com/promohive/promohive-api/internal/pkg/email"
	"github.com/promohive/promohive-api/internal/pkg/jwt"
	"github.com/promohive/promohive-api/internal/pkg/logger"
	pkgresponse "github.com/promohive/promohive-api/internal/pkg/response"
	"github.com/promohive/promohive-api/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Env,
	})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting PromoHive API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	// Redis is optional: without it offer listings skip the cache and
	// refresh tokens are stateless
	redisClient, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, continuing without cache")
		redisClient = nil
	}
	defer database.CloseRedis(redisClient)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)

	emailService := email.NewService(email.Config{
		SendGrid: email.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.EmailFrom,
			FromName:  cfg.EmailFromName,
		},
		BaseURL: cfg.FrontendURL,
	})
	defer emailService.Close()

	store := newStorage(cfg)

	// ---------- Repositories ----------
	userRepo := user.NewRepository(db)
	walletRepo := wallet.NewRepository(db)
	rewardRepo := reward.NewRepository(db)
	offerRepo := offer.NewRepository(db)
	taskRepo := task.NewRepository(db)
	submissionRepo := submission.NewRepository(db)

	// ---------- Services ----------
	walletService := wallet.NewService(walletRepo)
	rewardService := reward.NewService(rewardRepo)
	userService := user.NewService(userRepo, walletService, emailService, cfg.WelcomeBonus)
	offerService := offer.NewService(offerRepo, rewardService, userRepo, redisClient)
	taskService := task.NewService(taskRepo, offerRepo, rewardService, userRepo)
	submissionService := submission.NewService(submissionRepo, taskRepo, walletService, emailService, store)
	authService := auth.NewService(userRepo, jwtService, redisClient)

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	walletHandler := wallet.NewHandler(walletService)
	rewardHandler := reward.NewHandler(rewardService)
	offerHandler := offer.NewHandler(offerService)
	taskHandler := task.NewHandler(taskService)
	submissionHandler := submission.NewHandler(submissionService)

	authMiddleware := middleware.Auth(jwtService)
	adminMiddleware := middleware.RequireAdmin()

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes(authMiddleware))
		r.Mount("/users", userHandler.Routes(authMiddleware))
		r.Mount("/offers", offerHandler.Routes(authMiddleware))
		r.Mount("/tasks", taskHandler.Routes(authMiddleware))
		r.Mount("/submissions", submissionHandler.Routes(authMiddleware))
		r.Mount("/wallet", walletHandler.Routes(authMiddleware))
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Mount("/users", userHandler.AdminRoutes(authMiddleware, adminMiddleware))
		r.Mount("/offers", offerHandler.AdminRoutes(authMiddleware, adminMiddleware))
		r.Mount("/rewards", rewardHandler.AdminRoutes(authMiddleware, adminMiddleware))
		r.Mount("/submissions", submissionHandler.AdminRoutes(authMiddleware, adminMiddleware))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

// newStorage builds the proof storage backend: S3 (or any S3-compatible
// endpoint) when configured, local filesystem otherwise
func newStorage(cfg *config.Config) storage.Storage {
	if cfg.S3AccessKey != "" && cfg.S3SecretKey != "" {
		s3Store, err := storage.NewS3Storage(storage.Config{
			S3Endpoint:  cfg.S3Endpoint,
			S3Region:    cfg.S3Region,
			S3AccessKey: cfg.S3AccessKey,
			S3SecretKey: cfg.S3SecretKey,
			S3Bucket:    cfg.S3Bucket,
			S3PublicURL: cfg.S3PublicURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create S3 storage")
		}
		return s3Store
	}

	localStore, err := storage.NewLocalStorage(cfg.LocalStoragePath, "/uploads")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create local storage")
	}
	log.Warn().Str("path", cfg.LocalStoragePath).Msg("S3 not configured, storing proofs on local disk")
	return localStore
}
