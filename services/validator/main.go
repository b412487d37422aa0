package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clearcheck/qualgate/pkg/lexicon"
	"github.com/clearcheck/qualgate/services/validator/config"
	"github.com/clearcheck/qualgate/services/validator/handlers"
	"github.com/clearcheck/qualgate/services/validator/middleware"
	"github.com/clearcheck/qualgate/services/validator/services"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// 2. Load lexical pattern lists
	lex, err := lexicon.Load()
	if err != nil {
		logger.Fatal("failed to load pattern lexicon", zap.Error(err))
	}

	// 3. Initialize services
	evaluationService := services.NewEvaluationService(cfg.ValidatorID, cfg.ScoringPolicy(), lex)

	// 4. Initialize handlers
	evaluationHandler := handlers.NewEvaluationHandler(evaluationService, logger)
	healthHandler := handlers.NewHealthHandler(lex)

	// 5. Setup routes
	router := setupRoutes(evaluationHandler, healthHandler, cfg)

	// 6. Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	logger.Info("validator server started",
		zap.String("validator_id", cfg.ValidatorID),
		zap.String("port", cfg.Port),
	)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown failed", zap.Error(err))
	}
	logger.Info("server exiting")
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func setupRoutes(evaluationHandler *handlers.EvaluationHandler, healthHandler *handlers.HealthHandler, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateWindow))

	// Health check
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Evaluation related
		v1.POST("/evaluate", evaluationHandler.Evaluate)
		v1.POST("/evaluate/batch", evaluationHandler.EvaluateBatch)
		v1.GET("/policy", evaluationHandler.Policy)
	}

	return router
}
