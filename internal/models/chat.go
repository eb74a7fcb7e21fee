package models

import "time"

// ChatMessage is a single message in a conversation.
type ChatMessage struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is one session's stored document.
type Conversation struct {
	SessionID    string        `json:"sessionId"`
	Messages     []ChatMessage `json:"messages"`
	LastActivity time.Time     `json:"lastActivity"`
	CreatedAt    time.Time     `json:"createdAt"`
}

type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"sessionId"`
}

type ConversationHistory struct {
	Messages []ChatMessage `json:"messages"`
}
