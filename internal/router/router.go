package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"skillnest-ai-service/internal/handlers"
	"skillnest-ai-service/internal/middleware"
)

func New(
	quizHandler *handlers.QuizHandler,
	chatHandler *handlers.ChatHandler,
	videoHandler *handlers.VideoHandler,
	healthHandler *handlers.HealthHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Chat rate limiter (30 req/min per IP)
	chatLimiter := middleware.NewRateLimiter(30, time.Minute)

	r.Get("/", healthHandler.Root)
	r.Get("/api/health", healthHandler.Health)

	// ──── Quiz Routes ────
	r.Route("/api/ai", func(r chi.Router) {
		r.Post("/generate-quiz", quizHandler.GenerateQuiz)
		r.Post("/extract-content", quizHandler.ExtractContent)
		r.Get("/health", quizHandler.Health)
	})

	// ──── Chatbot Routes ────
	r.Route("/api/chatbot", func(r chi.Router) {
		r.Use(chatLimiter.Middleware)
		r.Post("/chat", chatHandler.Chat)
		r.Get("/history/{session_id}", chatHandler.History)
		r.Delete("/conversation/{session_id}", chatHandler.ClearConversation)
		r.Get("/health", chatHandler.Health)
	})

	// ──── Video AI Routes ────
	r.Route("/api/video-ai", func(r chi.Router) {
		r.Post("/summarize", videoHandler.Summarize)
		r.Post("/ask-question", videoHandler.AskQuestion)
		r.Get("/questions/{video_id}", videoHandler.QuestionHistory)
		r.Get("/videos", videoHandler.ListVideos)
		r.Post("/videos", videoHandler.RegisterVideo)
		r.Post("/videos/youtube", videoHandler.RegisterYouTube)
		r.Post("/videos/seed", videoHandler.SeedShowcase)
		r.Post("/test-sample", videoHandler.TestSample)
		r.Get("/health", videoHandler.Health)
	})

	return r
}
