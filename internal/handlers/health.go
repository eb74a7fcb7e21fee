package handlers

import (
	"net/http"

	"skillnest-ai-service/internal/repository"
	"skillnest-ai-service/internal/services"
)

// HealthHandler reports the combined status of all service areas.
type HealthHandler struct {
	gemini *services.GeminiService
	chat   *services.ChatService
	store  *repository.ConversationStore
}

func NewHealthHandler(gemini *services.GeminiService, chat *services.ChatService, store *repository.ConversationStore) *HealthHandler {
	return &HealthHandler{gemini: gemini, chat: chat, store: store}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"services": map[string]interface{}{
			"quiz_generator": map[string]interface{}{
				"ai_available": h.gemini.Available(),
				"model":        h.gemini.ModelName(),
			},
			"video_ai": map[string]interface{}{
				"ai_available": h.gemini.Available(),
				"model":        h.gemini.ModelName(),
			},
			"bobby_chatbot": map[string]interface{}{
				"ai_available":       h.chat.Available(),
				"database_available": h.store.Available(),
				"model":              h.chat.ModelName(),
			},
		},
	})
}

// Root handles GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "SkillNest AI Service is running",
		"docs":    "/api/health",
	})
}
