package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"skillnest-ai-service/internal/models"
	"skillnest-ai-service/internal/services"
)

const qaHistoryLimit = 20

// TranscriptRegistry is the transcript store behind the video endpoints,
// satisfied by repository.TranscriptRepo.
type TranscriptRegistry interface {
	Upsert(ctx context.Context, t *models.VideoTranscript) error
	GetByVideoID(ctx context.Context, videoID string) (*models.VideoTranscript, error)
	List(ctx context.Context) ([]*models.VideoTranscript, error)
}

// SummaryCache stores generated summaries, satisfied by
// repository.SummaryCacheRepo. A lookup miss returns pgx.ErrNoRows.
type SummaryCache interface {
	Get(ctx context.Context, videoID, summaryType string) (*models.SummaryResponse, error)
	Save(ctx context.Context, resp *models.SummaryResponse) error
}

// QACache stores answered questions, satisfied by repository.QARepo.
type QACache interface {
	FindMatch(ctx context.Context, videoID, question string) (*models.QAResponse, error)
	Save(ctx context.Context, resp *models.QAResponse) error
	History(ctx context.Context, videoID string, limit int) ([]*models.QAResponse, error)
}

// VideoHandler serves video summarization, Q&A and the transcript registry.
// The store fields are nil when no database is configured, in which case
// caching and the registry are disabled and every request hits the model.
type VideoHandler struct {
	gemini      *services.GeminiService
	youtube     *services.YouTubeService
	transcripts TranscriptRegistry
	summaries   SummaryCache
	qa          QACache
}

func NewVideoHandler(
	gemini *services.GeminiService,
	youtube *services.YouTubeService,
	transcripts TranscriptRegistry,
	summaries SummaryCache,
	qa QACache,
) *VideoHandler {
	return &VideoHandler{
		gemini:      gemini,
		youtube:     youtube,
		transcripts: transcripts,
		summaries:   summaries,
		qa:          qa,
	}
}

// resolveTranscript returns the request's transcript, falling back to the
// registry when the request carries none but names a registered video.
func (h *VideoHandler) resolveTranscript(r *http.Request, videoID string, segments []models.TranscriptSegment) []models.TranscriptSegment {
	if len(segments) > 0 || h.transcripts == nil || videoID == "" {
		return segments
	}
	stored, err := h.transcripts.GetByVideoID(r.Context(), videoID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			log.Printf("⚠ Transcript lookup failed for %s: %v", videoID, err)
		}
		return segments
	}
	return stored.Transcript
}

// Summarize handles POST /api/video-ai/summarize
func (h *VideoHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req models.SummarizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.SummaryType == "" {
		req.SummaryType = "detailed"
	}

	req.Transcript = h.resolveTranscript(r, req.VideoID, req.Transcript)
	if len(req.Transcript) == 0 {
		writeDetail(w, http.StatusBadRequest, "Transcript is required for summarization")
		return
	}

	if h.summaries != nil && req.VideoID != "" {
		cached, err := h.summaries.Get(r.Context(), req.VideoID, req.SummaryType)
		if err == nil {
			writeJSON(w, http.StatusOK, cached)
			return
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			log.Printf("⚠ Summary cache lookup failed for %s: %v", req.VideoID, err)
		}
	}

	transcriptText := services.RenderTranscript(req.Transcript)
	result, aiPowered := h.gemini.Summarize(r.Context(), transcriptText, req.SummaryType, req.FocusArea)

	resp := &models.SummaryResponse{
		VideoID:         req.VideoID,
		SummaryType:     req.SummaryType,
		Summary:         result.Summary,
		KeyPoints:       result.KeyPoints,
		DurationCovered: "Full video",
		GeneratedAt:     time.Now().Format(time.RFC3339),
		AIPowered:       aiPowered,
	}

	if h.summaries != nil && req.VideoID != "" {
		if err := h.summaries.Save(r.Context(), resp); err != nil {
			log.Printf("⚠ Summary cache write failed for %s: %v", req.VideoID, err)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// AskQuestion handles POST /api/video-ai/ask-question
func (h *VideoHandler) AskQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.QARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		writeDetail(w, http.StatusBadRequest, "Question is required")
		return
	}

	req.Transcript = h.resolveTranscript(r, req.VideoID, req.Transcript)
	if len(req.Transcript) == 0 {
		writeDetail(w, http.StatusBadRequest, "Transcript is required to answer questions")
		return
	}

	if h.qa != nil && req.VideoID != "" {
		cached, err := h.qa.FindMatch(r.Context(), req.VideoID, req.Question)
		if err == nil {
			writeJSON(w, http.StatusOK, cached)
			return
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			log.Printf("⚠ Q&A cache lookup failed for %s: %v", req.VideoID, err)
		}
	}

	transcriptText := services.RenderTranscript(req.Transcript)
	result, aiPowered := h.gemini.AnswerQuestion(r.Context(), transcriptText, req.Question)

	resp := &models.QAResponse{
		VideoID:            req.VideoID,
		Question:           req.Question,
		Answer:             result.Answer,
		RelevantTimestamps: result.RelevantTimestamps,
		Confidence:         result.Confidence,
		Sources:            []string{"Video transcript analysis"},
		AIPowered:          aiPowered,
	}

	if h.qa != nil && req.VideoID != "" {
		if err := h.qa.Save(r.Context(), resp); err != nil {
			log.Printf("⚠ Q&A cache write failed for %s: %v", req.VideoID, err)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// QuestionHistory handles GET /api/video-ai/questions/{video_id}
func (h *VideoHandler) QuestionHistory(w http.ResponseWriter, r *http.Request) {
	if h.qa == nil {
		writeDetail(w, http.StatusServiceUnavailable, "Question history requires a configured database")
		return
	}

	videoID := chi.URLParam(r, "video_id")
	entries, err := h.qa.History(r.Context(), videoID, qaHistoryLimit)
	if err != nil {
		log.Printf("⚠ Q&A history lookup failed for %s: %v", videoID, err)
		writeDetail(w, http.StatusInternalServerError, "Failed to load question history")
		return
	}
	if entries == nil {
		entries = []*models.QAResponse{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"video_id":  videoID,
		"questions": entries,
		"count":     len(entries),
	})
}

// RegisterVideo handles POST /api/video-ai/videos
func (h *VideoHandler) RegisterVideo(w http.ResponseWriter, r *http.Request) {
	if h.transcripts == nil {
		writeDetail(w, http.StatusServiceUnavailable, "Transcript registry requires a configured database")
		return
	}

	var t models.VideoTranscript
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(t.VideoID) == "" {
		writeDetail(w, http.StatusBadRequest, "Video ID is required")
		return
	}
	if len(t.Transcript) == 0 {
		writeDetail(w, http.StatusBadRequest, "Transcript segments are required")
		return
	}

	if err := h.transcripts.Upsert(r.Context(), &t); err != nil {
		log.Printf("⚠ Transcript registration failed for %s: %v", t.VideoID, err)
		writeDetail(w, http.StatusInternalServerError, "Failed to register transcript")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Transcript registered successfully",
		"video_id": t.VideoID,
	})
}

// RegisterYouTube handles POST /api/video-ai/videos/youtube. It fetches the
// transcript and metadata for a YouTube video and stores them in the registry.
func (h *VideoHandler) RegisterYouTube(w http.ResponseWriter, r *http.Request) {
	if h.transcripts == nil {
		writeDetail(w, http.StatusServiceUnavailable, "Transcript registry requires a configured database")
		return
	}

	var req struct {
		VideoID  string `json:"video_id"`
		CourseID string `json:"course_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.VideoID) == "" {
		writeDetail(w, http.StatusBadRequest, "Video ID is required")
		return
	}

	segments, err := h.youtube.FetchTranscript(req.VideoID)
	if err != nil {
		log.Printf("⚠ YouTube transcript fetch failed for %s: %v", req.VideoID, err)
		writeDetail(w, http.StatusUnprocessableEntity, "Could not fetch a transcript for this video")
		return
	}

	title, duration, err := h.youtube.FetchMetadata(req.VideoID)
	if err != nil {
		log.Printf("⚠ YouTube metadata fetch failed for %s: %v", req.VideoID, err)
		title = req.VideoID
	}

	t := models.VideoTranscript{
		VideoID:    req.VideoID,
		CourseID:   req.CourseID,
		Title:      title,
		Transcript: segments,
		Duration:   duration,
	}
	if err := h.transcripts.Upsert(r.Context(), &t); err != nil {
		log.Printf("⚠ Transcript registration failed for %s: %v", req.VideoID, err)
		writeDetail(w, http.StatusInternalServerError, "Failed to register transcript")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":       "YouTube transcript registered successfully",
		"video_id":      t.VideoID,
		"title":         t.Title,
		"duration":      t.Duration,
		"segment_count": len(t.Transcript),
	})
}

// ListVideos handles GET /api/video-ai/videos
func (h *VideoHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	if h.transcripts == nil {
		writeDetail(w, http.StatusServiceUnavailable, "Transcript registry requires a configured database")
		return
	}

	entries, err := h.transcripts.List(r.Context())
	if err != nil {
		log.Printf("⚠ Transcript listing failed: %v", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to list transcripts")
		return
	}
	if entries == nil {
		entries = []*models.VideoTranscript{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"videos": entries,
		"count":  len(entries),
	})
}

// SeedShowcase handles POST /api/video-ai/videos/seed. It loads a small set
// of sample lecture transcripts so the service can be demonstrated without
// real course content.
func (h *VideoHandler) SeedShowcase(w http.ResponseWriter, r *http.Request) {
	if h.transcripts == nil {
		writeDetail(w, http.StatusServiceUnavailable, "Transcript registry requires a configured database")
		return
	}

	seeded := make([]string, 0, len(showcaseTranscripts))
	for i := range showcaseTranscripts {
		t := showcaseTranscripts[i]
		if err := h.transcripts.Upsert(r.Context(), &t); err != nil {
			log.Printf("⚠ Seeding transcript %s failed: %v", t.VideoID, err)
			continue
		}
		seeded = append(seeded, t.VideoID)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":               "Sample transcripts loaded",
		"transcripts_available": seeded,
	})
}

// TestSample handles POST /api/video-ai/test-sample. It runs summarization
// and Q&A against a built-in transcript so the pipeline can be exercised
// end to end without supplying content.
func (h *VideoHandler) TestSample(w http.ResponseWriter, r *http.Request) {
	transcriptText := services.RenderTranscript(sampleMLTranscript)

	summary, summaryAI := h.gemini.Summarize(r.Context(), transcriptText, "detailed", "")
	answer, answerAI := h.gemini.AnswerQuestion(r.Context(), transcriptText, "What is the difference between supervised and unsupervised learning?")

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"test_status": "completed",
		"service_info": map[string]interface{}{
			"ai_available": h.gemini.Available(),
			"model":        h.gemini.ModelName(),
		},
		"summary_test": map[string]interface{}{
			"summary":    summary.Summary,
			"key_points": summary.KeyPoints,
			"ai_powered": summaryAI,
		},
		"qa_test": map[string]interface{}{
			"answer":     answer.Answer,
			"confidence": answer.Confidence,
			"ai_powered": answerAI,
		},
	})
}

// Health handles GET /api/video-ai/health
func (h *VideoHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":             "healthy",
		"service":            "Video AI Service",
		"ai_available":       h.gemini.Available(),
		"database_available": h.transcripts != nil,
		"model":              h.gemini.ModelName(),
		"features": []string{
			"video_summarization",
			"video_question_answering",
			"transcript_registry",
			"youtube_transcript_import",
		},
		"endpoints": []string{
			"POST /summarize",
			"POST /ask-question",
			"GET /questions/{video_id}",
			"GET /videos",
			"POST /videos",
			"POST /videos/youtube",
			"POST /videos/seed",
			"POST /test-sample",
			"GET /health",
		},
	})
}
