package models

import "encoding/json"

// QuizSettings controls how many questions are generated and at which level.
type QuizSettings struct {
	QuestionCount int      `json:"question_count"`
	Difficulty    string   `json:"difficulty"`
	QuestionTypes []string `json:"question_types"`
}

// DefaultQuizSettings is what a request without a settings object gets.
func DefaultQuizSettings() QuizSettings {
	return QuizSettings{
		QuestionCount: 10,
		Difficulty:    "medium",
		QuestionTypes: []string{"mcq"},
	}
}

// UnmarshalJSON applies per-field defaults. An absent question_count means
// the default of 10; an explicit 0 stays 0 and yields an empty quiz.
func (s *QuizSettings) UnmarshalJSON(data []byte) error {
	type settingsAlias QuizSettings
	aux := struct {
		QuestionCount *int `json:"question_count"`
		*settingsAlias
	}{settingsAlias: (*settingsAlias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.QuestionCount != nil {
		s.QuestionCount = *aux.QuestionCount
	} else {
		s.QuestionCount = 10
	}
	if s.Difficulty == "" {
		s.Difficulty = "medium"
	}
	if len(s.QuestionTypes) == 0 {
		s.QuestionTypes = []string{"mcq"}
	}
	return nil
}

type QuizGenerationRequest struct {
	Content  string        `json:"content"`
	Settings *QuizSettings `json:"settings"`
	CourseID string        `json:"course_id"`
	UserID   string        `json:"user_id"`
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Type          string   `json:"type"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
	Difficulty    string   `json:"difficulty"`
	Points        int      `json:"points"`
}

type QuizGenerationResponse struct {
	QuizID    string         `json:"quiz_id"`
	Questions []QuizQuestion `json:"questions"`
	Status    string         `json:"status"`
	AIPowered bool           `json:"ai_powered"`
}

// ExtractedContent is returned by the content extraction endpoint and can be
// fed directly into QuizGenerationRequest.Content.
type ExtractedContent struct {
	Content   string `json:"content"`
	WordCount int    `json:"word_count"`
	Format    string `json:"format"`
}
