package services

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"skillnest-ai-service/internal/models"
)

// chatContextWindow is how many stored messages accompany each completion.
const chatContextWindow = 10

// ChatService talks to Groq's OpenAI-compatible chat completions API for the
// Bobby chatbot. A missing API key puts it into permanent fallback mode.
type ChatService struct {
	opts      []option.RequestOption
	modelName string
	available bool
}

func NewChatService(apiKey, modelName, baseURL string) *ChatService {
	s := &ChatService{modelName: modelName}

	if apiKey == "" {
		return s
	}

	s.opts = []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		s.opts = append(s.opts, option.WithBaseURL(baseURL))
	}
	s.available = true
	return s
}

func (s *ChatService) Available() bool {
	return s.available
}

func (s *ChatService) ModelName() string {
	if s.available {
		return s.modelName
	}
	return "intelligent_fallback"
}

// Reply completes the conversation. recent must already end with the user's
// latest message; only the last chatContextWindow entries are sent.
func (s *ChatService) Reply(ctx context.Context, recent []models.ChatMessage) (string, error) {
	if !s.available {
		return "", fmt.Errorf("chat model is not configured")
	}

	if len(recent) > chatContextWindow {
		recent = recent[len(recent)-chatContextWindow:]
	}

	msgs := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(bobbySystemPrompt),
	}
	for _, m := range recent {
		switch m.Role {
		case "assistant":
			msgs = append(msgs, openai.ChatCompletionMessageParamOfAssistant(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}

	client := openai.NewClient(s.opts...)
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(s.modelName),
		Messages:    msgs,
		MaxTokens:   openai.Int(300),
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("chat model returned no content")
	}
	return resp.Choices[0].Message.Content, nil
}

// FallbackReply routes the message to a canned response when the model is
// unavailable or errored.
func (s *ChatService) FallbackReply(message string) string {
	return fallbackChatReply(message)
}
