package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devfolio/portfolio-api/internal/api"
	"github.com/devfolio/portfolio-api/internal/core/service"
	"github.com/devfolio/portfolio-api/internal/infrastructure/config"
	"github.com/devfolio/portfolio-api/internal/infrastructure/db/mongo"
	"github.com/devfolio/portfolio-api/internal/infrastructure/db/redis"
	"github.com/devfolio/portfolio-api/pkg/logger"
	"github.com/devfolio/portfolio-api/pkg/token"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	secret, insecure := cfg.SigningSecret()
	if insecure {
		log.Warn().Msg("JWT_SECRET is not set, using the insecure built-in secret")
	}
	codec := token.New(secret, token.DefaultTTL)

	// --- Backing stores ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect to mongo")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure mongo indexes")
	}

	redisClient, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect to redis")
	}
	defer redisClient.Close()

	// --- Repositories ---
	userRepo := mongo.NewUserRepository(db)
	postRepo := mongo.NewPostRepository(db)
	commentRepo := mongo.NewCommentRepository(db)
	contactRepo := mongo.NewContactRepository(db)
	projectRepo := mongo.NewProjectRepository(db)
	skillRepo := mongo.NewSkillRepository(db)
	certRepo := mongo.NewCertificateRepository(db)
	resumeRepo := mongo.NewResumeRepository(db)

	// --- Services ---
	authService := service.NewAuthService(userRepo, codec, log)
	postService := service.NewPostService(postRepo, redis.NewViewCounter(redisClient), log)
	commentService := service.NewCommentService(commentRepo, postRepo, log)
	contactService := service.NewContactService(contactRepo, redis.NewSubmissionGuard(redisClient), log)
	profileService := service.NewProfileService(projectRepo, skillRepo, certRepo, resumeRepo, log)
	dashboardService := service.NewDashboardService(postRepo, projectRepo, commentRepo, contactRepo)

	if err := authService.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name); err != nil {
		log.Fatal().Err(err).Msg("bootstrap admin account")
	}

	e := api.NewRouter(api.RouterConfig{
		Logger:        log,
		Codec:         codec,
		SecureCookies: cfg.IsProduction(),
		ExposeErrors:  !cfg.IsProduction(),
		Auth:          authService,
		Posts:         postService,
		Comments:      commentService,
		Contact:       contactService,
		Profile:       profileService,
		Dashboard:     dashboardService,
		Mongo:         mongoClient,
		Redis:         redisClient,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
