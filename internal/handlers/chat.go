package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"skillnest-ai-service/internal/models"
	"skillnest-ai-service/internal/repository"
	"skillnest-ai-service/internal/services"
)

const maxChatMessageLen = 1000

// ChatHandler serves the Bobby chatbot endpoints.
type ChatHandler struct {
	chat  *services.ChatService
	store *repository.ConversationStore
}

func NewChatHandler(chat *services.ChatService, store *repository.ConversationStore) *ChatHandler {
	return &ChatHandler{chat: chat, store: store}
}

// Chat handles POST /api/chatbot/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeDetail(w, http.StatusBadRequest, "Message is required")
		return
	}
	if len(message) > maxChatMessageLen {
		writeDetail(w, http.StatusBadRequest, "Message is too long. Please keep it under 1000 characters.")
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		writeDetail(w, http.StatusBadRequest, "Session ID is required")
		return
	}

	ctx := r.Context()
	h.store.Append(ctx, req.SessionID, "user", message)

	var reply string
	if h.chat.Available() {
		history := h.store.History(ctx, req.SessionID)
		aiReply, err := h.chat.Reply(ctx, history)
		if err != nil {
			log.Printf("⚠ Chat completion failed, using fallback: %v", err)
			reply = h.chat.FallbackReply(message)
		} else {
			reply = aiReply
		}
	} else {
		reply = h.chat.FallbackReply(message)
	}

	h.store.Append(ctx, req.SessionID, "assistant", reply)

	writeJSON(w, http.StatusOK, models.ChatResponse{
		Response:  reply,
		SessionID: req.SessionID,
	})
}

// History handles GET /api/chatbot/history/{session_id}
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")
	if sessionID == "" {
		writeDetail(w, http.StatusBadRequest, "Session ID is required")
		return
	}

	messages := h.store.History(r.Context(), sessionID)
	if messages == nil {
		messages = []models.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, models.ConversationHistory{Messages: messages})
}

// ClearConversation handles DELETE /api/chatbot/conversation/{session_id}
func (h *ChatHandler) ClearConversation(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")
	if sessionID == "" {
		writeDetail(w, http.StatusBadRequest, "Session ID is required")
		return
	}

	h.store.Clear(r.Context(), sessionID)
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Conversation cleared successfully",
	})
}

// Health handles GET /api/chatbot/health
func (h *ChatHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service":            "bobby_chatbot",
		"status":             "healthy",
		"ai_available":       h.chat.Available(),
		"database_available": h.store.Available(),
		"model":              h.chat.ModelName(),
	})
}
