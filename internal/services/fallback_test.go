package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"skillnest-ai-service/internal/models"
)

const sampleContent = "Python is a programming language. It supports functional and object-oriented styles. " +
	"Machine learning libraries make Python popular. Developers value its readability and ecosystem."

func TestFallbackQuizQuestions_ExactCount(t *testing.T) {
	counts := []int{1, 3, 5, 10, 25}

	for _, count := range counts {
		settings := models.QuizSettings{QuestionCount: count, Difficulty: "medium"}
		questions := fallbackQuizQuestions(sampleContent, settings)
		if len(questions) != count {
			t.Errorf("Count %d: expected %d questions, got %d", count, count, len(questions))
		}
	}
}

func TestFallbackQuizQuestions_ZeroCount(t *testing.T) {
	settings := models.QuizSettings{QuestionCount: 0, Difficulty: "easy"}
	questions := fallbackQuizQuestions(sampleContent, settings)
	if len(questions) != 0 {
		t.Errorf("Expected 0 questions, got %d", len(questions))
	}
}

func TestFallbackQuizQuestions_NoDuplicates(t *testing.T) {
	settings := models.QuizSettings{QuestionCount: 8, Difficulty: "hard"}
	questions := fallbackQuizQuestions(sampleContent, settings)

	seen := make(map[string]bool)
	for _, q := range questions {
		if seen[q.Question] {
			t.Errorf("Duplicate question: %q", q.Question)
		}
		seen[q.Question] = true

		if q.Difficulty != "hard" {
			t.Errorf("Expected difficulty 'hard', got %q", q.Difficulty)
		}
		if len(q.Options) != 4 {
			t.Errorf("Expected 4 options, got %d", len(q.Options))
		}
		if q.CorrectAnswer == "" {
			t.Error("Expected a correct answer")
		}
	}
}

func TestClipRunes(t *testing.T) {
	long := strings.Repeat("日", 150)
	clipped := clipRunes(long, 100)

	if !utf8.ValidString(clipped) {
		t.Error("Expected valid UTF-8 after clipping")
	}
	if n := utf8.RuneCountInString(clipped); n != 100 {
		t.Errorf("Expected 100 runes, got %d", n)
	}

	short := "short"
	if clipRunes(short, 100) != short {
		t.Error("Expected short strings to pass through unchanged")
	}
}

func TestFallbackQuizQuestions_MultibyteContent(t *testing.T) {
	content := strings.Repeat("学習機械の講義です。", 30)
	settings := models.QuizSettings{QuestionCount: 3, Difficulty: "medium"}

	questions := fallbackQuizQuestions(content, settings)
	if len(questions) != 3 {
		t.Fatalf("Expected 3 questions, got %d", len(questions))
	}
	for _, q := range questions {
		if !utf8.ValidString(q.Question) {
			t.Errorf("Expected valid UTF-8 question text, got %q", q.Question)
		}
	}
}

func TestBuildQuizPrompt_MultibyteContent(t *testing.T) {
	content := strings.Repeat("光合成は植物の働きです。", 500)
	prompt := buildQuizPrompt(content, models.QuizSettings{QuestionCount: 5, Difficulty: "easy"})

	if !utf8.ValidString(prompt) {
		t.Error("Expected valid UTF-8 in the generated prompt")
	}
}

func TestFillerQuestion(t *testing.T) {
	q := fillerQuestion(7, "medium")
	if !strings.Contains(q.Question, "(7)") {
		t.Errorf("Expected position in question text, got %q", q.Question)
	}
	if q.CorrectAnswer != "Main point from the content" {
		t.Errorf("Unexpected correct answer %q", q.CorrectAnswer)
	}
}

func TestExtractKeyTerms(t *testing.T) {
	terms := extractKeyTerms("Python is great. The algorithms here are readable and the cat sat.")

	if _, ok := terms["Python"]; !ok {
		t.Error("Expected capitalized term 'Python'")
	}
	if _, ok := terms["algorithms"]; !ok {
		t.Error("Expected long term 'algorithms'")
	}
	if _, ok := terms["cat"]; ok {
		t.Error("Did not expect short lowercase term 'cat'")
	}
	if _, ok := terms["readable"]; ok {
		t.Error("Did not expect 8-letter lowercase term 'readable'")
	}
}

func TestFallbackSummary_Brief(t *testing.T) {
	transcript := "Welcome to the lecture\n" +
		"Machine learning is important to understand\n" +
		"Remember to review the notes\n" +
		"What is supervised learning\n" +
		"Note that labels are required\n" +
		"Thanks for watching"

	result := fallbackSummary(transcript, "brief")

	if len(result.KeyPoints) != 3 {
		t.Errorf("Expected 3 key points for brief summary, got %d", len(result.KeyPoints))
	}
	if !strings.Contains(result.Summary, "6 key discussion points") {
		t.Errorf("Expected line count in summary, got %q", result.Summary)
	}
	if len(result.MainTopics) != 2 || result.MainTopics[0] != "Educational Content" {
		t.Errorf("Unexpected main topics %v", result.MainTopics)
	}
}

func TestFallbackSummary_Detailed(t *testing.T) {
	transcript := "important point one\nkey point two\nremember point three\n" +
		"define point four\nnote that point five\nwhat is point six"

	result := fallbackSummary(transcript, "detailed")

	if len(result.KeyPoints) != 5 {
		t.Errorf("Expected 5 key points for detailed summary, got %d", len(result.KeyPoints))
	}
}

func TestFallbackSummary_NoImportantLines(t *testing.T) {
	result := fallbackSummary("hello there\ngeneral chatter", "brief")
	if len(result.KeyPoints) != 3 {
		t.Errorf("Expected 3 placeholder key points, got %d", len(result.KeyPoints))
	}
	if result.KeyPoints[0] != "Key concept 1" {
		t.Errorf("Expected placeholder key point, got %q", result.KeyPoints[0])
	}
}

func TestFallbackAnswer_Match(t *testing.T) {
	transcript := "Today we discuss supervised learning and how labeled data trains models."
	result := fallbackAnswer("What is supervised learning?", transcript)

	if result.Confidence != "medium" {
		t.Errorf("Expected medium confidence, got %q", result.Confidence)
	}
	if !strings.Contains(result.Answer, "supervised") {
		t.Errorf("Expected matched word in answer, got %q", result.Answer)
	}
	if len(result.RelevantTimestamps) != 0 {
		t.Errorf("Expected no timestamps, got %v", result.RelevantTimestamps)
	}
}

func TestFallbackAnswer_NoMatch(t *testing.T) {
	result := fallbackAnswer("What about quantum entanglement?", "This lecture covers cooking pasta.")

	if result.Confidence != "low" {
		t.Errorf("Expected low confidence, got %q", result.Confidence)
	}
	if !strings.Contains(result.Answer, "cannot find") {
		t.Errorf("Expected a cannot-find answer, got %q", result.Answer)
	}
}

func TestFallbackChatReply(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"learning topic", "I want to study for my course", "learning journey"},
		{"greeting", "hello there", "Hello! I'm Bobby"},
		{"help request", "can you assist me", "happy to help"},
		{"anything else", "what's the weather", "technical difficulties"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reply := fallbackChatReply(tc.message)
			if !strings.Contains(reply, tc.expected) {
				t.Errorf("Expected reply containing %q, got %q", tc.expected, reply)
			}
		})
	}
}
