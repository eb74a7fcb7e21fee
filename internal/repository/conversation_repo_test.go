package repository

import (
	"context"
	"fmt"
	"testing"
)

func TestConversationStore_MemoryRoundTrip(t *testing.T) {
	store := NewConversationStore(nil)
	ctx := context.Background()

	if store.Available() {
		t.Error("Expected store to report unavailable without Redis")
	}

	store.Append(ctx, "session-1", "user", "Hi")
	store.Append(ctx, "session-1", "assistant", "Hello!")

	messages := store.History(ctx, "session-1")
	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != "user" || messages[0].Content != "Hi" {
		t.Errorf("Unexpected first message %+v", messages[0])
	}
	if messages[1].Role != "assistant" || messages[1].Content != "Hello!" {
		t.Errorf("Unexpected second message %+v", messages[1])
	}
	if messages[0].Timestamp.IsZero() {
		t.Error("Expected a timestamp on stored messages")
	}
}

func TestConversationStore_SessionsIsolated(t *testing.T) {
	store := NewConversationStore(nil)
	ctx := context.Background()

	store.Append(ctx, "session-a", "user", "for a")
	store.Append(ctx, "session-b", "user", "for b")

	if n := len(store.History(ctx, "session-a")); n != 1 {
		t.Errorf("Expected 1 message in session-a, got %d", n)
	}
	if msgs := store.History(ctx, "session-b"); len(msgs) != 1 || msgs[0].Content != "for b" {
		t.Errorf("Unexpected session-b history %+v", msgs)
	}
}

func TestConversationStore_TruncatesToLimit(t *testing.T) {
	store := NewConversationStore(nil)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		store.Append(ctx, "session-1", "user", fmt.Sprintf("message %d", i))
	}

	messages := store.History(ctx, "session-1")
	if len(messages) != maxStoredMessages {
		t.Fatalf("Expected %d messages, got %d", maxStoredMessages, len(messages))
	}
	// Oldest entries drop first
	if messages[0].Content != "message 5" {
		t.Errorf("Expected oldest retained message to be 'message 5', got %q", messages[0].Content)
	}
	if messages[len(messages)-1].Content != "message 24" {
		t.Errorf("Expected newest message last, got %q", messages[len(messages)-1].Content)
	}
}

func TestConversationStore_Clear(t *testing.T) {
	store := NewConversationStore(nil)
	ctx := context.Background()

	store.Append(ctx, "session-1", "user", "Hi")
	store.Clear(ctx, "session-1")

	if n := len(store.History(ctx, "session-1")); n != 0 {
		t.Errorf("Expected empty history after clear, got %d messages", n)
	}

	// Clearing an unknown session is a no-op
	store.Clear(ctx, "never-existed")
}

func TestConversationStore_HistoryReturnsCopy(t *testing.T) {
	store := NewConversationStore(nil)
	ctx := context.Background()

	store.Append(ctx, "session-1", "user", "original")
	messages := store.History(ctx, "session-1")
	messages[0].Content = "mutated"

	if store.History(ctx, "session-1")[0].Content != "original" {
		t.Error("Expected stored history to be unaffected by caller mutation")
	}
}
