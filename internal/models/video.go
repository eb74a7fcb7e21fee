package models

import "time"

// TranscriptSegment is one captioned chunk of a video.
type TranscriptSegment struct {
	Timestamp string `json:"timestamp,omitempty"`
	Text      string `json:"text"`
	Speaker   string `json:"speaker,omitempty"`
}

// VideoTranscript is a registered transcript in the video library.
type VideoTranscript struct {
	VideoID    string              `json:"video_id"`
	CourseID   string              `json:"course_id"`
	Title      string              `json:"title"`
	Transcript []TranscriptSegment `json:"transcript"`
	Duration   string              `json:"duration,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

type SummarizationRequest struct {
	VideoID     string              `json:"video_id"`
	Transcript  []TranscriptSegment `json:"transcript"`
	SummaryType string              `json:"summary_type"` // detailed, brief, key_points
	FocusArea   string              `json:"focus_area,omitempty"`
}

type QARequest struct {
	VideoID    string              `json:"video_id"`
	Transcript []TranscriptSegment `json:"transcript"`
	Question   string              `json:"question"`
	Context    string              `json:"context,omitempty"`
}

type SummaryResponse struct {
	VideoID         string   `json:"video_id"`
	SummaryType     string   `json:"summary_type"`
	Summary         string   `json:"summary"`
	KeyPoints       []string `json:"key_points"`
	DurationCovered string   `json:"duration_covered"`
	GeneratedAt     string   `json:"generated_at"`
	AIPowered       bool     `json:"ai_powered"`
}

type QAResponse struct {
	VideoID            string   `json:"video_id"`
	Question           string   `json:"question"`
	Answer             string   `json:"answer"`
	RelevantTimestamps []string `json:"relevant_timestamps"`
	Confidence         string   `json:"confidence"`
	Sources            []string `json:"sources"`
	AIPowered          bool     `json:"ai_powered"`
}

// SummaryResult is the decoded shape of a model summarization reply.
type SummaryResult struct {
	Summary    string   `json:"summary"`
	KeyPoints  []string `json:"key_points"`
	MainTopics []string `json:"main_topics"`
}

// AnswerResult is the decoded shape of a model Q&A reply.
type AnswerResult struct {
	Answer             string   `json:"answer"`
	RelevantTimestamps []string `json:"relevant_timestamps"`
	Confidence         string   `json:"confidence"`
	AdditionalInfo     string   `json:"additional_info,omitempty"`
}
