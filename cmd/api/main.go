package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"talent-match/internal/config"
	apihttp "talent-match/internal/http"
	"talent-match/internal/repository"
	"talent-match/internal/seed"
	"talent-match/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	rng := service.NewRandomSource(cfg.Seed)
	generator := service.NewTraitGenerator(rng)
	catalog := seed.Build(generator, rng, cfg.SeedEmployees)

	employeeRepo := repository.NewMemoryEmployeeRepository(catalog.Employees...)
	jobRepo := repository.NewMemoryJobRepository(catalog.Jobs...)
	teamRepo := repository.NewMemoryTeamRepository(catalog.Teams...)
	assessmentRepo := repository.NewMemoryAssessmentRepository()

	matchCache := service.NewMemoryMatchCache(cfg.MatchCacheTTL)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using memory match cache", zap.Error(err))
			_ = redisClient.Close()
		} else {
			matchCache = service.NewRedisMatchCache(redisClient, cfg.MatchCacheTTL)
			defer redisClient.Close()
		}
		cancel()
	}

	matcher := service.NewJobMatcher(rng, matchCache, logger)
	assessmentSvc := service.NewAssessmentService(assessmentRepo, employeeRepo, matchCache, logger)

	employeeHandler := apihttp.NewEmployeeHandler(logger, employeeRepo, generator, rng)
	matchHandler := apihttp.NewMatchHandler(logger, employeeRepo, jobRepo, matcher)
	teamHandler := apihttp.NewTeamHandler(logger, teamRepo, employeeRepo)
	assessmentHandler := apihttp.NewAssessmentHandler(logger, assessmentSvc, assessmentRepo)
	router := apihttp.NewRouter(logger, employeeHandler, matchHandler, teamHandler, assessmentHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.Int("employees", len(catalog.Employees)),
		zap.Int("jobs", len(catalog.Jobs)),
		zap.Int("teams", len(catalog.Teams)),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
