package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"skillnest-ai-service/internal/models"
)

const quizMaxAttempts = 3

// GeminiService wraps the Gemini client for quiz generation, transcript
// summarization and Q&A. A missing API key puts the service into permanent
// fallback mode; per-call failures degrade that call only.
type GeminiService struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
	available bool
	rateChan  chan struct{} // Token bucket
}

func NewGeminiService(apiKey, modelName string, concurrentReqs int) (*GeminiService, error) {
	s := &GeminiService{modelName: modelName}

	if apiKey == "" {
		return s, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.SetTopP(0.95)

	// Token bucket for concurrent request limiting
	rateChan := make(chan struct{}, concurrentReqs)
	for i := 0; i < concurrentReqs; i++ {
		rateChan <- struct{}{}
	}

	s.client = client
	s.model = model
	s.available = true
	s.rateChan = rateChan
	return s, nil
}

func (s *GeminiService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

func (s *GeminiService) Available() bool {
	return s.available
}

// ModelName reports what the health endpoints advertise.
func (s *GeminiService) ModelName() string {
	if s.available {
		return s.modelName
	}
	return "intelligent_fallback"
}

// acquireRate blocks until a rate slot is available
func (s *GeminiService) acquireRate(ctx context.Context) error {
	select {
	case <-s.rateChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Minute):
		return fmt.Errorf("timeout waiting for Gemini rate slot")
	}
}

func (s *GeminiService) releaseRate() {
	s.rateChan <- struct{}{}
}

func (s *GeminiService) generate(ctx context.Context, prompt string) (string, error) {
	if err := s.acquireRate(ctx); err != nil {
		return "", err
	}
	defer s.releaseRate()

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	return extractText(resp), nil
}

// GenerateQuiz returns exactly settings.QuestionCount questions and whether
// they came from the model. Up to quizMaxAttempts calls are made; an attempt
// only succeeds when its reply validates AND carries the exact requested
// count. Call errors and malformed output advance the loop identically.
// Exhaustion falls back to the deterministic generator, and a final clip/pad
// pass enforces the count regardless of which branch produced the data.
func (s *GeminiService) GenerateQuiz(ctx context.Context, content string, settings models.QuizSettings) ([]models.QuizQuestion, bool) {
	if settings.QuestionCount < 0 {
		settings.QuestionCount = 0
	}

	var questions []models.QuizQuestion
	aiPowered := false

	if s.available {
		prompt := buildQuizPrompt(content, settings)
		for attempt := 1; attempt <= quizMaxAttempts; attempt++ {
			raw, err := s.generate(ctx, prompt)
			if err != nil {
				log.Printf("⚠ Quiz attempt %d/%d: %v", attempt, quizMaxAttempts, err)
				continue
			}

			parsed, err := parseQuizQuestions(extractCandidate(raw, shapeArray))
			if err != nil {
				log.Printf("⚠ Quiz attempt %d/%d: %v", attempt, quizMaxAttempts, err)
				continue
			}

			if len(parsed) != settings.QuestionCount {
				log.Printf("⚠ Quiz attempt %d/%d: got %d questions instead of %d",
					attempt, quizMaxAttempts, len(parsed), settings.QuestionCount)
				continue
			}

			questions = parsed
			aiPowered = true
			break
		}
	}

	if !aiPowered {
		questions = fallbackQuizQuestions(content, settings)
	}

	// Safety net independent of which branch produced the data
	if len(questions) > settings.QuestionCount {
		questions = questions[:settings.QuestionCount]
	}
	for len(questions) < settings.QuestionCount {
		questions = append(questions, fillerQuestion(len(questions)+1, settings.Difficulty))
	}

	return questions, aiPowered
}

// QuizID derives a stable quiz identifier from the request.
func QuizID(content string, questionCount int, aiPowered bool) string {
	h := fnv.New32a()
	h.Write([]byte(content))
	fmt.Fprintf(h, "%d", questionCount)

	prefix := "smart"
	if aiPowered {
		prefix = "ai"
	}
	return fmt.Sprintf("%s-quiz-%05d", prefix, h.Sum32()%100000)
}

// Summarize produces a structured summary of the transcript, falling back to
// the keyword scanner when the model call or its parsing fails.
func (s *GeminiService) Summarize(ctx context.Context, transcriptText, summaryType, focusArea string) (*models.SummaryResult, bool) {
	if s.available {
		raw, err := s.generate(ctx, buildSummaryPrompt(transcriptText, summaryType, focusArea))
		if err == nil {
			result, perr := parseSummaryResult(extractCandidate(raw, shapeObject))
			if perr == nil {
				return result, true
			}
			log.Printf("⚠ Summary parsing failed, using fallback: %v", perr)
		} else {
			log.Printf("⚠ Summary generation failed, using fallback: %v", err)
		}
	}

	return fallbackSummary(transcriptText, summaryType), false
}

// AnswerQuestion answers a question against the transcript, falling back to
// keyword matching when the model is unavailable or its reply is unusable.
func (s *GeminiService) AnswerQuestion(ctx context.Context, transcriptText, question string) (*models.AnswerResult, bool) {
	if s.available {
		raw, err := s.generate(ctx, buildQAPrompt(transcriptText, question))
		if err == nil {
			result, perr := parseAnswerResult(extractCandidate(raw, shapeObject))
			if perr == nil {
				return result, true
			}
			log.Printf("⚠ Q&A parsing failed, using fallback: %v", perr)
		} else {
			log.Printf("⚠ Q&A generation failed, using fallback: %v", err)
		}
	}

	return fallbackAnswer(question, transcriptText), false
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
