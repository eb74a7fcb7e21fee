package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"skillnest-ai-service/internal/models"
	"skillnest-ai-service/internal/services"
)

const maxUploadBytes = 20 << 20 // 20MB

// QuizHandler serves quiz generation and content extraction.
type QuizHandler struct {
	gemini  *services.GeminiService
	extract *services.FileExtractService
}

func NewQuizHandler(gemini *services.GeminiService, extract *services.FileExtractService) *QuizHandler {
	return &QuizHandler{gemini: gemini, extract: extract}
}

// GenerateQuiz handles POST /api/ai/generate-quiz
func (h *QuizHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.QuizGenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		writeDetail(w, http.StatusBadRequest, "Content is required for quiz generation")
		return
	}

	settings := models.DefaultQuizSettings()
	if req.Settings != nil {
		settings = *req.Settings
	}
	if settings.QuestionCount < 0 {
		settings.QuestionCount = 0
	}

	questions, aiPowered := h.gemini.GenerateQuiz(r.Context(), req.Content, settings)

	resp := models.QuizGenerationResponse{
		QuizID:    services.QuizID(req.Content, settings.QuestionCount, aiPowered),
		Questions: questions,
		Status:    "completed",
		AIPowered: aiPowered,
	}
	writeJSON(w, http.StatusOK, resp)
}

// ExtractContent handles POST /api/ai/extract-content (multipart file upload)
func (h *QuizHandler) ExtractContent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	supported := false
	for _, s := range h.extract.SupportedFormats() {
		if ext == s {
			supported = true
			break
		}
	}
	if !supported {
		writeDetail(w, http.StatusUnsupportedMediaType, "Unsupported file format. Supported formats: "+strings.Join(h.extract.SupportedFormats(), ", "))
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	text, err := h.extract.ExtractText(data, header.Filename)
	if err != nil {
		log.Printf("⚠ Content extraction failed for %s: %v", header.Filename, err)
		writeDetail(w, http.StatusUnprocessableEntity, "Could not extract text from the uploaded file")
		return
	}

	resp := models.ExtractedContent{
		Content:   text,
		WordCount: len(strings.Fields(text)),
		Format:    strings.TrimPrefix(ext, "."),
	}
	writeJSON(w, http.StatusOK, resp)
}

// Health handles GET /api/ai/health
func (h *QuizHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service":      "quiz_generator",
		"status":       "healthy",
		"ai_available": h.gemini.Available(),
		"model":        h.gemini.ModelName(),
	})
}
