package services

import (
	"errors"
	"testing"
)

func TestExtractCandidate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		shape    candidateShape
		expected string
	}{
		{
			"json fence",
			"Here you go:\n```json\n[{\"question\": \"Q1\"}]\n```\nLet me know!",
			shapeArray,
			`[{"question": "Q1"}]`,
		},
		{
			"plain fence",
			"```\n{\"summary\": \"ok\"}\n```",
			shapeObject,
			`{"summary": "ok"}`,
		},
		{
			"prose around array",
			"Sure, the quiz is [1, 2, 3] as requested.",
			shapeArray,
			`[1, 2, 3]`,
		},
		{
			"object inside prose",
			"Answer: {\"answer\": \"yes\"} hope that helps",
			shapeObject,
			`{"answer": "yes"}`,
		},
		{
			"no brackets returns trimmed text",
			"  no json here  ",
			shapeArray,
			"no json here",
		},
		{
			"unclosed json fence",
			"```json\n[\"a\"]",
			shapeArray,
			`["a"]`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := extractCandidate(tc.raw, tc.shape)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestParseQuizQuestions_Valid(t *testing.T) {
	candidate := `[{
		"question": "What is Go?",
		"type": "mcq",
		"options": ["A language", "A game", "A fruit", "A city"],
		"correct_answer": "A language",
		"explanation": "Go is a programming language.",
		"difficulty": "easy",
		"points": 1
	}]`

	questions, err := parseQuizQuestions(candidate)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(questions))
	}
	if questions[0].CorrectAnswer != "A language" {
		t.Errorf("Expected correct_answer 'A language', got %q", questions[0].CorrectAnswer)
	}
}

func TestParseQuizQuestions_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		sentinel  error
	}{
		{"not json", "the model refused", ErrDecode},
		{"object instead of array", `{"question": "Q"}`, ErrDecode},
		{"empty array", `[]`, ErrSchema},
		{"missing correct_answer", `[{"question": "Q", "options": ["a", "b"]}]`, ErrSchema},
		{"missing options", `[{"question": "Q", "correct_answer": "a"}]`, ErrSchema},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseQuizQuestions(tc.candidate)
			if !errors.Is(err, tc.sentinel) {
				t.Errorf("Expected %v, got %v", tc.sentinel, err)
			}
		})
	}
}

func TestParseSummaryResult(t *testing.T) {
	valid := `{"summary": "S", "key_points": ["a"], "main_topics": ["b"]}`
	result, err := parseSummaryResult(valid)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Summary != "S" {
		t.Errorf("Expected summary 'S', got %q", result.Summary)
	}

	_, err = parseSummaryResult(`{"summary": "S", "key_points": []}`)
	if !errors.Is(err, ErrSchema) {
		t.Errorf("Expected ErrSchema for missing main_topics, got %v", err)
	}

	_, err = parseSummaryResult("not json")
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Expected ErrDecode, got %v", err)
	}
}

func TestParseAnswerResult(t *testing.T) {
	valid := `{"answer": "A", "relevant_timestamps": ["01:00"], "confidence": "high"}`
	result, err := parseAnswerResult(valid)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Confidence != "high" {
		t.Errorf("Expected confidence 'high', got %q", result.Confidence)
	}

	_, err = parseAnswerResult(`{"answer": "A"}`)
	if !errors.Is(err, ErrSchema) {
		t.Errorf("Expected ErrSchema for missing fields, got %v", err)
	}
}
