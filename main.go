// File: medibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/availability"
	"medibook/services/conversation"
	ai "medibook/services/intelligence"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(routes.CORSMiddleware())

	// Session store: in-memory by default, Redis when configured.
	var store conversation.SessionStore
	switch config.AppConfig.SessionStore {
	case "redis":
		utils.InitSessionCache()
		ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
		store = conversation.NewRedisSessionStore(utils.GetSessionCacheClient(), ttl)
	default:
		store = conversation.NewMemorySessionStore()
	}

	classifier, err := ai.NewGeminiClassifier(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize symptom classifier: %v", err)
	}

	generator := availability.NewDefaultGenerator(
		config.AppConfig.SlotDaysAhead,
		config.AppConfig.SlotUnavailableProbable,
	)

	conversationService := conversation.NewDefaultConversationService(
		store,
		classifier,
		generator,
		time.Duration(config.AppConfig.ClassifierTimeoutSec)*time.Second,
	)

	chatHandler := handlers.NewChatHandler(conversationService, logger)

	routes.RegisterChatRoutes(router, chatHandler)
	routes.RegisterHealthRoute(router)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
