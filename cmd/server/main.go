package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"skillnest-ai-service/internal/config"
	"skillnest-ai-service/internal/database"
	"skillnest-ai-service/internal/handlers"
	"skillnest-ai-service/internal/repository"
	"skillnest-ai-service/internal/router"
	"skillnest-ai-service/internal/services"
)

func main() {
	log.Println("🚀 Starting SkillNest AI Service...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize PostgreSQL (optional) ────
	// Without a database the service still runs, with result caching and the
	// transcript registry disabled.
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		p, err := database.NewPostgresPool(cfg.DatabaseURL)
		if err != nil {
			log.Printf("⚠ PostgreSQL unavailable, caching disabled: %v", err)
		} else {
			pool = p
			defer pool.Close()
			log.Println("✓ PostgreSQL connected")

			if err := database.RunMigrations(pool, "migrations"); err != nil {
				log.Fatalf("✗ Database migration failed: %v", err)
			}
			log.Println("✓ Database migrations applied")
		}
	} else {
		log.Println("⚠ DATABASE_URL not set, caching and transcript registry disabled")
	}

	// ──── Step 3: Initialize Redis (optional) ────
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		c, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠ Redis unavailable, conversations held in memory: %v", err)
		} else {
			redisClient = c
			defer redisClient.Close()
			log.Println("✓ Redis connected")
		}
	} else {
		log.Println("⚠ REDIS_URL not set, conversations held in memory")
	}

	// ──── Step 4: Initialize AI Clients ────
	geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiConcurrentReqs)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	if geminiService.Available() {
		log.Println("✓ Gemini client initialized")
	} else {
		log.Println("⚠ GEMINI_API_KEY not set, quiz and video AI run in fallback mode")
	}

	chatService := services.NewChatService(cfg.GroqAPIKey, cfg.GroqModel, cfg.GroqBaseURL)
	if chatService.Available() {
		log.Println("✓ Groq chat client initialized")
	} else {
		log.Println("⚠ GROQ_API_KEY not set, chatbot runs in fallback mode")
	}

	youtubeService := services.NewYouTubeService()
	fileExtractService := services.NewFileExtractService()

	// ──── Step 5: Initialize Repositories ────
	conversationStore := repository.NewConversationStore(redisClient)

	// Interface-typed so a missing database stays a nil store
	var transcriptRepo handlers.TranscriptRegistry
	var summaryCacheRepo handlers.SummaryCache
	var qaRepo handlers.QACache
	if pool != nil {
		transcriptRepo = repository.NewTranscriptRepo(pool)
		summaryCacheRepo = repository.NewSummaryCacheRepo(pool)
		qaRepo = repository.NewQARepo(pool)
	}

	// ──── Step 6: Initialize Handlers ────
	quizHandler := handlers.NewQuizHandler(geminiService, fileExtractService)
	chatHandler := handlers.NewChatHandler(chatService, conversationStore)
	videoHandler := handlers.NewVideoHandler(geminiService, youtubeService, transcriptRepo, summaryCacheRepo, qaRepo)
	healthHandler := handlers.NewHealthHandler(geminiService, chatService, conversationStore)

	// ──── Step 7: Start HTTP Server ────
	r := router.New(quizHandler, chatHandler, videoHandler, healthHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // model calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ SkillNest AI Service ready on http://localhost:%s", cfg.Port)
	log.Printf("  Quiz:    http://localhost:%s/api/ai", cfg.Port)
	log.Printf("  Chatbot: http://localhost:%s/api/chatbot", cfg.Port)
	log.Printf("  Video:   http://localhost:%s/api/video-ai", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
