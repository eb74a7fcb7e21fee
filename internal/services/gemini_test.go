package services

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"skillnest-ai-service/internal/models"
)

func newOfflineGemini(t *testing.T) *GeminiService {
	t.Helper()
	svc, err := NewGeminiService("", "gemini-2.0-flash", 5)
	if err != nil {
		t.Fatalf("Expected no error without an API key, got %v", err)
	}
	t.Cleanup(svc.Close)
	return svc
}

func TestNewGeminiService_NoKey(t *testing.T) {
	svc := newOfflineGemini(t)

	if svc.Available() {
		t.Error("Expected service to be unavailable without an API key")
	}
	if svc.ModelName() != "intelligent_fallback" {
		t.Errorf("Expected model 'intelligent_fallback', got %q", svc.ModelName())
	}
}

func TestGenerateQuiz_FallbackMode(t *testing.T) {
	svc := newOfflineGemini(t)
	settings := models.QuizSettings{QuestionCount: 5, Difficulty: "medium", QuestionTypes: []string{"mcq"}}

	questions, aiPowered := svc.GenerateQuiz(context.Background(), sampleContent, settings)

	if aiPowered {
		t.Error("Expected ai_powered false in fallback mode")
	}
	if len(questions) != 5 {
		t.Errorf("Expected exactly 5 questions, got %d", len(questions))
	}
}

func TestGenerateQuiz_NegativeCountClamped(t *testing.T) {
	svc := newOfflineGemini(t)
	settings := models.QuizSettings{QuestionCount: -3, Difficulty: "easy"}

	questions, _ := svc.GenerateQuiz(context.Background(), sampleContent, settings)
	if len(questions) != 0 {
		t.Errorf("Expected 0 questions for negative count, got %d", len(questions))
	}
}

func TestQuizID(t *testing.T) {
	id1 := QuizID("some content", 10, true)
	id2 := QuizID("some content", 10, true)
	if id1 != id2 {
		t.Errorf("Expected stable IDs, got %q and %q", id1, id2)
	}

	if !strings.HasPrefix(id1, "ai-quiz-") {
		t.Errorf("Expected ai prefix, got %q", id1)
	}
	if !strings.HasPrefix(QuizID("some content", 10, false), "smart-quiz-") {
		t.Errorf("Expected smart prefix for fallback quizzes")
	}

	format := regexp.MustCompile(`^(ai|smart)-quiz-\d{5}$`)
	if !format.MatchString(id1) {
		t.Errorf("Expected 5-digit suffix, got %q", id1)
	}

	if QuizID("some content", 10, true) == QuizID("other content", 10, true) {
		t.Error("Expected different content to produce different IDs")
	}
}

func TestSummarize_FallbackMode(t *testing.T) {
	svc := newOfflineGemini(t)

	result, aiPowered := svc.Summarize(context.Background(), "important concepts here\nmore lines", "brief", "")
	if aiPowered {
		t.Error("Expected ai_powered false in fallback mode")
	}
	if result.Summary == "" {
		t.Error("Expected a non-empty summary")
	}
	if len(result.MainTopics) == 0 {
		t.Error("Expected main topics")
	}
}

func TestAnswerQuestion_FallbackMode(t *testing.T) {
	svc := newOfflineGemini(t)

	result, aiPowered := svc.AnswerQuestion(context.Background(), "we cover recursion today", "What is recursion?")
	if aiPowered {
		t.Error("Expected ai_powered false in fallback mode")
	}
	if result.Confidence != "medium" {
		t.Errorf("Expected medium confidence for matched keyword, got %q", result.Confidence)
	}
}

func TestRenderTranscript(t *testing.T) {
	segments := []models.TranscriptSegment{
		{Timestamp: "00:00", Text: "Welcome", Speaker: "Instructor"},
		{Text: "No metadata here"},
	}

	rendered := RenderTranscript(segments)
	lines := strings.Split(rendered, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Welcome") || !strings.Contains(lines[0], "00:00") {
		t.Errorf("Expected timestamp and text in %q", lines[0])
	}
	if lines[1] != "No metadata here" {
		t.Errorf("Expected bare text for segment without metadata, got %q", lines[1])
	}
}
