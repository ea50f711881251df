package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/leetsync/leetsync-api/internal/config"
	"github.com/leetsync/leetsync-api/internal/database"
	"github.com/leetsync/leetsync-api/internal/handler"
	"github.com/leetsync/leetsync-api/internal/leetcode"
	"github.com/leetsync/leetsync-api/internal/middleware"
	"github.com/leetsync/leetsync-api/internal/models"
	"github.com/leetsync/leetsync-api/internal/repository"
	"github.com/leetsync/leetsync-api/internal/router"
	"github.com/leetsync/leetsync-api/internal/service"
	"github.com/leetsync/leetsync-api/pkg/ai"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.UserProfile{}, &models.Problem{}, &models.SolvedProblem{}, &models.UserStats{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	judge := leetcode.NewClient(leetcode.Config{
		Endpoint:        cfg.LeetcodeEndpoint,
		Timeout:         cfg.LeetcodeTimeout,
		SubmissionLimit: cfg.SubmissionLimit,
		Logger:          logger,
	})

	var generator ai.Generator
	if cfg.OpenAIAPIKey != "" {
		openAIGenerator, err := ai.NewOpenAIGenerator(ai.OpenAIConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
			Logger: logger,
		})
		if err != nil {
			log.Fatalf("failed to create openai generator: %v", err)
		}
		generator = openAIGenerator
	} else {
		logger.Warn().Msg("openai api key not configured, dashboard recommendations will use the fallback list")
	}

	profileRepo := repository.NewUserProfileRepository(db)
	problemRepo := repository.NewProblemRepository(db)
	solvedRepo := repository.NewSolvedProblemRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	validate := validator.New(validator.WithRequiredStructEnabled())

	syncService := service.NewSyncService(profileRepo, problemRepo, solvedRepo, statsRepo, judge, logger)
	dashboardService := service.NewDashboardService(statsRepo, solvedRepo, generator, redisClient, cfg.DashboardCacheTTL, logger)
	profileService := service.NewProfileService(profileRepo, validate, logger)

	syncHandler := handler.NewSyncHandler(syncService, logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, logger)
	profileHandler := handler.NewProfileHandler(profileService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		SyncHandler:      syncHandler,
		DashboardHandler: dashboardHandler,
		ProfileHandler:   profileHandler,
		JWTMiddleware:    middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
