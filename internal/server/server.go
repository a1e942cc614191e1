package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"

	"tunereport/internal/config"
	"tunereport/internal/database"
	"tunereport/internal/handlers"
	"tunereport/internal/repositories"
	"tunereport/internal/routes"
	"tunereport/internal/services"
)

func NewServer() *http.Server {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	pool, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr(),
		DB:   cfg.Redis.DB,
	})

	// Test Redis connection and fail fast with a clear message
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect to Redis at %s: %v", cfg.Redis.Addr(), err)
		}
		log.Println("Connected to Redis successfully")
	}

	// Dependency injection
	runRepo := repositories.NewRunRepository(pool)
	snapshotRepo := repositories.NewSnapshotRepository(pool)
	redisRepo := repositories.NewRedisRepository(rdb)

	runService := services.NewRunService(runRepo, redisRepo)
	leaderboardService := services.NewLeaderboardService(runRepo)
	reportService := services.NewReportService(
		leaderboardService,
		snapshotRepo,
		redisRepo,
		time.Duration(cfg.Report.CacheTTLSeconds)*time.Second,
	)

	runHandler := handlers.NewRunHandler(runService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.Default())
	routes.RegisterRoutes(router, runHandler, leaderboardHandler, reportHandler, cfg.Auth.APIToken)

	// Create and configure the HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
