package models

import (
	"encoding/json"
	"testing"
)

func TestQuizSettingsUnmarshal(t *testing.T) {
	tests := []struct {
		name          string
		payload       string
		expectedCount int
		expectedDiff  string
		expectedTypes []string
	}{
		{"all fields", `{"question_count": 7, "difficulty": "hard", "question_types": ["true_false"]}`, 7, "hard", []string{"true_false"}},
		{"explicit zero count", `{"question_count": 0}`, 0, "medium", []string{"mcq"}},
		{"absent count defaults", `{"difficulty": "easy"}`, 10, "easy", []string{"mcq"}},
		{"empty object", `{}`, 10, "medium", []string{"mcq"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var s QuizSettings
			if err := json.Unmarshal([]byte(tc.payload), &s); err != nil {
				t.Fatalf("Failed to unmarshal: %v", err)
			}

			if s.QuestionCount != tc.expectedCount {
				t.Errorf("Expected count %d, got %d", tc.expectedCount, s.QuestionCount)
			}
			if s.Difficulty != tc.expectedDiff {
				t.Errorf("Expected difficulty %q, got %q", tc.expectedDiff, s.Difficulty)
			}
			if len(s.QuestionTypes) != len(tc.expectedTypes) || s.QuestionTypes[0] != tc.expectedTypes[0] {
				t.Errorf("Expected types %v, got %v", tc.expectedTypes, s.QuestionTypes)
			}
		})
	}
}

func TestQuizGenerationRequest_MissingSettings(t *testing.T) {
	var req QuizGenerationRequest
	if err := json.Unmarshal([]byte(`{"content": "some material"}`), &req); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if req.Settings != nil {
		t.Errorf("Expected nil settings when the object is absent, got %+v", req.Settings)
	}
}
