package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"skillnest-ai-service/internal/models"
)

// Model replies arrive as free text that usually, but not always, wraps a
// JSON value in markdown fences. Extraction is best-effort and never fails;
// validation decides whether the candidate is usable.

var (
	// ErrDecode means the candidate text was not valid JSON.
	ErrDecode = errors.New("response is not valid JSON")
	// ErrSchema means the JSON decoded but is missing required fields.
	ErrSchema = errors.New("response is missing required fields")
)

// candidateShape selects which bracket pair extraction narrows to.
type candidateShape int

const (
	shapeArray candidateShape = iota
	shapeObject
)

// extractCandidate strips markdown fencing and isolates the first value of
// the expected shape. It returns its best candidate even when that candidate
// is not valid JSON.
func extractCandidate(raw string, shape candidateShape) string {
	text := strings.TrimSpace(raw)

	if idx := strings.Index(text, "```json"); idx >= 0 {
		rest := text[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			text = rest[:end]
		} else {
			text = rest
		}
	} else if strings.Contains(text, "```") {
		parts := strings.Split(text, "```")
		if len(parts) >= 3 {
			text = parts[1]
		}
	}
	text = strings.TrimSpace(text)

	opener, closer := "{", "}"
	if shape == shapeArray {
		opener, closer = "[", "]"
	}

	start := strings.Index(text, opener)
	end := strings.LastIndex(text, closer)
	if start >= 0 && end > start {
		return text[start : end+1]
	}

	return text
}

// parseQuizQuestions validates the quiz variant: a non-empty array where
// every element carries question, options and correct_answer.
func parseQuizQuestions(candidate string) ([]models.QuizQuestion, error) {
	var rawItems []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &rawItems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(rawItems) == 0 {
		return nil, fmt.Errorf("%w: empty question array", ErrSchema)
	}

	for i, item := range rawItems {
		for _, key := range []string{"question", "options", "correct_answer"} {
			if _, ok := item[key]; !ok {
				return nil, fmt.Errorf("%w: question %d lacks %q", ErrSchema, i, key)
			}
		}
	}

	var questions []models.QuizQuestion
	if err := json.Unmarshal([]byte(candidate), &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return questions, nil
}

// parseSummaryResult validates the summary variant.
func parseSummaryResult(candidate string) (*models.SummaryResult, error) {
	keys, err := decodeObjectKeys(candidate)
	if err != nil {
		return nil, err
	}
	for _, key := range []string{"summary", "key_points", "main_topics"} {
		if _, ok := keys[key]; !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrSchema, key)
		}
	}

	var result models.SummaryResult
	if err := json.Unmarshal([]byte(candidate), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &result, nil
}

// parseAnswerResult validates the Q&A variant.
func parseAnswerResult(candidate string) (*models.AnswerResult, error) {
	keys, err := decodeObjectKeys(candidate)
	if err != nil {
		return nil, err
	}
	for _, key := range []string{"answer", "relevant_timestamps", "confidence"} {
		if _, ok := keys[key]; !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrSchema, key)
		}
	}

	var result models.AnswerResult
	if err := json.Unmarshal([]byte(candidate), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &result, nil
}

func decodeObjectKeys(candidate string) (map[string]json.RawMessage, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &keys); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return keys, nil
}
