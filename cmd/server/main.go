package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/scrawlgame/scrawl/internal/common/clock"
	"github.com/scrawlgame/scrawl/internal/common/timer"
	"github.com/scrawlgame/scrawl/internal/common/uuid"
	"github.com/scrawlgame/scrawl/internal/dictionary"
	"github.com/scrawlgame/scrawl/internal/handlers/ws"
	gameRepo "github.com/scrawlgame/scrawl/internal/repositories/game"
	"github.com/scrawlgame/scrawl/internal/services/messaging"
	"github.com/scrawlgame/scrawl/internal/services/session"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if getEnv("LOG_PRETTY", "") != "" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	// Load the word list
	dictPath := getEnv("DICTIONARY_PATH", "words.txt")
	dict, err := dictionary.Load(dictPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", dictPath).Msg("failed to load dictionary")
	}
	logger.Info().Int("words", dict.Len()).Msg("dictionary loaded")

	// Initialize repositories
	repo, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create game repository")
	}

	// Initialize the room log-line service
	msgSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create messaging service")
	}

	// The hub is both the websocket registry and the session service's
	// outbound channel
	hub := ws.NewHub(logger)

	sessionSvc, err := session.New(&session.Config{
		Dictionary:    dict,
		Sender:        hub,
		GameRepo:      repo,
		Messaging:     msgSvc,
		Clock:         clock.New(),
		Scheduler:     timer.New(),
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create session service")
	}

	handler, err := ws.NewHandler(&ws.HandlerConfig{
		Sessions: sessionSvc,
		Hub:      hub,
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create ws handler")
	}

	if getEnv("GIN_MODE", "") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	handler.Register(router)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	server := &http.Server{
		Addr:    getEnv("LISTEN_ADDR", ":8080"),
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
	logger.Info().Msg("server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
