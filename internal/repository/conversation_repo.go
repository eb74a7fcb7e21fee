package repository

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"skillnest-ai-service/internal/models"
)

const (
	conversationKeyPrefix = "conversation:"
	maxStoredMessages     = 20
)

// ConversationStore keeps per-session chat history as one JSON document per
// session. The Redis client is probed once at startup; a nil client means
// memory-only mode for the process lifetime. A transient Redis failure after
// a good probe falls through to memory for that call without downgrading the
// availability flag. Concurrent appends to the same session are not mutually
// excluded across the read-modify-write cycle (last write wins on the
// truncation step).
type ConversationStore struct {
	redis *redis.Client

	mu  sync.Mutex
	mem map[string][]models.ChatMessage
}

func NewConversationStore(client *redis.Client) *ConversationStore {
	return &ConversationStore{
		redis: client,
		mem:   make(map[string][]models.ChatMessage),
	}
}

// Available reports whether the document store was reachable at startup.
func (s *ConversationStore) Available() bool {
	return s.redis != nil
}

// Append stores one message, keeping only the most recent 20 per session.
func (s *ConversationStore) Append(ctx context.Context, sessionID, role, content string) models.ChatMessage {
	msg := models.ChatMessage{
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}

	if s.redis != nil {
		err := s.appendRedis(ctx, sessionID, msg)
		if err == nil {
			return msg
		}
		log.Printf("⚠ Conversation store write failed, using memory for this call: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	messages := append(s.mem[sessionID], msg)
	if len(messages) > maxStoredMessages {
		messages = messages[len(messages)-maxStoredMessages:]
	}
	s.mem[sessionID] = messages
	return msg
}

func (s *ConversationStore) appendRedis(ctx context.Context, sessionID string, msg models.ChatMessage) error {
	key := conversationKeyPrefix + sessionID
	now := time.Now().UTC()

	conv := models.Conversation{
		SessionID: sessionID,
		CreatedAt: now,
	}

	data, err := s.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if uerr := json.Unmarshal(data, &conv); uerr != nil {
			// Corrupt document: start the session over rather than fail
			conv = models.Conversation{SessionID: sessionID, CreatedAt: now}
		}
	case err == redis.Nil:
		// First message of the session
	default:
		return err
	}

	conv.Messages = append(conv.Messages, msg)
	if len(conv.Messages) > maxStoredMessages {
		conv.Messages = conv.Messages[len(conv.Messages)-maxStoredMessages:]
	}
	conv.LastActivity = now

	payload, err := json.Marshal(conv)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, key, payload, 0).Err()
}

// History returns the stored messages for a session, oldest first. Unknown
// sessions read as empty, never as an error.
func (s *ConversationStore) History(ctx context.Context, sessionID string) []models.ChatMessage {
	if s.redis != nil {
		data, err := s.redis.Get(ctx, conversationKeyPrefix+sessionID).Bytes()
		switch {
		case err == nil:
			var conv models.Conversation
			if uerr := json.Unmarshal(data, &conv); uerr == nil {
				return conv.Messages
			}
			return []models.ChatMessage{}
		case err == redis.Nil:
			return []models.ChatMessage{}
		default:
			log.Printf("⚠ Conversation store read failed, using memory for this call: %v", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	messages := s.mem[sessionID]
	out := make([]models.ChatMessage, len(messages))
	copy(out, messages)
	return out
}

// Clear removes a session's history from whichever store holds it. Clearing
// a session that was never created is not an error.
func (s *ConversationStore) Clear(ctx context.Context, sessionID string) {
	if s.redis != nil {
		if err := s.redis.Del(ctx, conversationKeyPrefix+sessionID).Err(); err != nil {
			log.Printf("⚠ Conversation store delete failed: %v", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.mem, sessionID)
}
