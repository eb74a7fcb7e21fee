package services

import (
	"fmt"
	"strings"
	"unicode"

	"skillnest-ai-service/internal/models"
)

// Deterministic substitutes used whenever the model call fails or returns
// unusable output. Each generator always returns a structurally valid result.

// fallbackQuizQuestions builds exactly settings.QuestionCount questions from
// the content itself: one question per key term plus a fixed pool of
// content-referencing templates, padded with numbered inferred questions.
func fallbackQuizQuestions(content string, settings models.QuizSettings) []models.QuizQuestion {
	sentences := nonEmptySentences(content)
	keyTerms := extractKeyTerms(content)

	preview := strings.ReplaceAll(clipRunes(content, 100), `"`, "'")

	pool := []models.QuizQuestion{
		{
			Question: fmt.Sprintf("What is the primary subject discussed in this content about '%s...'?", preview),
			Type:     "mcq",
			Options: []string{
				"The main topic explained in the text",
				"A supporting detail mentioned briefly",
				"Background or historical context",
				"An unrelated external concept",
			},
			CorrectAnswer: "The main topic explained in the text",
			Explanation:   "This question tests understanding of the central theme and main focus of the provided content.",
			Difficulty:    settings.Difficulty,
			Points:        1,
		},
		{
			Question: "What type of content is this based on its structure and presentation?",
			Type:     "mcq",
			Options: []string{
				"Educational material",
				"Entertainment content",
				"Technical documentation",
				"Opinion piece",
			},
			CorrectAnswer: "Educational material",
			Explanation:   "The content is structured to provide educational value and information.",
			Difficulty:    settings.Difficulty,
			Points:        1,
		},
		{
			Question: "How would you characterize the depth of information in this content?",
			Type:     "mcq",
			Options: []string{
				"Comprehensive coverage",
				"Basic overview",
				"Technical deep-dive",
				"Surface-level introduction",
			},
			CorrectAnswer: "Comprehensive coverage",
			Explanation:   "The content provides detailed information about its subject matter.",
			Difficulty:    settings.Difficulty,
			Points:        1,
		},
	}

	for term := range keyTerms {
		pool = append(pool, models.QuizQuestion{
			Question: fmt.Sprintf("What role does '%s' play in the content?", term),
			Type:     "mcq",
			Options: []string{
				"Central concept",
				"Supporting detail",
				"Background information",
				"Unrelated reference",
			},
			CorrectAnswer: "Central concept",
			Explanation:   fmt.Sprintf("'%s' is a key term that plays a central role in explaining the main concepts.", term),
			Difficulty:    settings.Difficulty,
			Points:        1,
		})
	}

	if len(sentences) > 3 {
		pool = append(pool, models.QuizQuestion{
			Question: "How is the information primarily organized in this content?",
			Type:     "mcq",
			Options: []string{
				"Logical progression of concepts",
				"Random collection of facts",
				"Chronological order",
				"Comparative analysis",
			},
			CorrectAnswer: "Logical progression of concepts",
			Explanation:   "The content follows a structured approach in presenting information.",
			Difficulty:    settings.Difficulty,
			Points:        1,
		})
	}

	for len(pool) < settings.QuestionCount {
		pool = append(pool, models.QuizQuestion{
			Question: fmt.Sprintf("Question %d: What can be inferred from the content?", len(pool)+1),
			Type:     "mcq",
			Options: []string{
				"It provides valuable information",
				"It lacks essential details",
				"It contains irrelevant material",
				"It needs more context",
			},
			CorrectAnswer: "It provides valuable information",
			Explanation:   "The content contains meaningful and relevant information about its subject.",
			Difficulty:    settings.Difficulty,
			Points:        1,
		})
	}

	return pool[:settings.QuestionCount]
}

// fillerQuestion is the padding used by the final count safety net.
func fillerQuestion(position int, difficulty string) models.QuizQuestion {
	return models.QuizQuestion{
		Question: fmt.Sprintf("Additional question about the content (%d)?", position),
		Type:     "mcq",
		Options: []string{
			"Main point from the content",
			"Secondary detail",
			"Related concept",
			"Unrelated information",
		},
		CorrectAnswer: "Main point from the content",
		Explanation:   "This tests understanding of the main concepts in the content.",
		Difficulty:    difficulty,
		Points:        1,
	}
}

// extractKeyTerms collects distinctive words: capitalized and longer than 3
// characters, or longer than 8, alphabetic after stripping commas/periods.
func extractKeyTerms(content string) map[string]struct{} {
	terms := make(map[string]struct{})
	for _, word := range strings.Fields(content) {
		runes := []rune(word)
		if len(runes) == 0 {
			continue
		}
		if !(unicode.IsUpper(runes[0]) && len(runes) > 3) && len(runes) <= 8 {
			continue
		}
		cleaned := strings.ReplaceAll(strings.ReplaceAll(word, ",", ""), ".", "")
		if cleaned == "" || !isAlpha(cleaned) {
			continue
		}
		terms[cleaned] = struct{}{}
	}
	return terms
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func nonEmptySentences(content string) []string {
	var sentences []string
	for _, s := range strings.Split(content, ".") {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, strings.TrimSpace(s))
		}
	}
	return sentences
}

var importantLineKeywords = []string{"what is", "define", "important", "key", "remember", "note that"}

// fallbackSummary scans the transcript for lines that look important and
// assembles a canned summary around them.
func fallbackSummary(transcriptText, summaryType string) *models.SummaryResult {
	var lines []string
	for _, line := range strings.Split(transcriptText, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}

	var importantLines []string
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, keyword := range importantLineKeywords {
			if strings.Contains(lower, keyword) {
				importantLines = append(importantLines, line)
				break
			}
		}
	}

	var summary string
	var keyPoints []string

	if summaryType == "brief" {
		summary = fmt.Sprintf("This video covers educational content with %d key discussion points. "+
			"The content appears to focus on learning concepts and practical applications.", len(lines))
		if len(importantLines) > 0 {
			keyPoints = firstN(importantLines, 3)
		} else {
			keyPoints = []string{"Key concept 1", "Key concept 2", "Key concept 3"}
		}
	} else {
		summary = fmt.Sprintf("This educational video provides comprehensive coverage of the subject matter. "+
			"The transcript contains %d segments of discussion, including explanations, "+
			"examples, and key learning points. The content is structured to facilitate understanding "+
			"and practical application of the concepts presented.", len(lines))
		if len(importantLines) > 0 {
			keyPoints = firstN(importantLines, 5)
		} else {
			keyPoints = []string{
				"Educational content overview",
				"Key concepts and definitions",
				"Practical applications",
				"Important examples",
				"Learning objectives",
			}
		}
	}

	return &models.SummaryResult{
		Summary:    summary,
		KeyPoints:  keyPoints,
		MainTopics: []string{"Educational Content", "Learning Material"},
	}
}

// fallbackAnswer matches question words against the transcript. It never
// cites timestamps: keyword presence says nothing about position.
func fallbackAnswer(question, transcriptText string) *models.AnswerResult {
	questionLower := strings.ToLower(question)
	transcriptLower := strings.ToLower(transcriptText)

	var matches []string
	for _, word := range strings.Fields(questionLower) {
		word = strings.TrimRight(word, "?.,!")
		if len(word) <= 3 {
			continue
		}
		if strings.Contains(transcriptLower, word) {
			matches = append(matches, word)
		}
	}

	if len(matches) > 0 {
		return &models.AnswerResult{
			Answer: fmt.Sprintf("Based on the transcript content, there are references to: %s. "+
				"The transcript contains relevant information about your question regarding %s. "+
				"For detailed information, please review the specific sections of the video.",
				strings.Join(matches, ", "), question),
			RelevantTimestamps: []string{},
			Confidence:         "medium",
			AdditionalInfo:     "This is a basic analysis. For more accurate answers, AI processing is recommended.",
		}
	}

	return &models.AnswerResult{
		Answer: fmt.Sprintf("I cannot find specific information about '%s' in this video transcript. "+
			"The question may be answered in a different video or section of the course.", question),
		RelevantTimestamps: []string{},
		Confidence:         "low",
		AdditionalInfo:     "This is a basic analysis. For more accurate answers, AI processing is recommended.",
	}
}

// fallbackChatReply routes the message to a canned Bobby response.
func fallbackChatReply(message string) string {
	lower := strings.ToLower(message)

	if containsAny(lower, "learn", "study", "course", "quiz", "education") {
		return "I'm here to help with your learning journey! While I'm having trouble connecting to my AI brain right now, I can still assist you. What specific topic or subject would you like help with?"
	}
	if containsAny(lower, "hello", "hi", "hey", "good morning", "good afternoon") {
		return "Hello! I'm Bobby, your AI learning assistant. I'm here to help you with your studies and answer any questions you might have about your courses!"
	}
	if containsAny(lower, "help", "assist", "support") {
		return "I'd be happy to help! I can assist with course questions, study tips, quiz preparation, and general academic support. What would you like help with today?"
	}

	return "I'm Bobby, your AI assistant! I'm here to help with your learning and studies. While I'm experiencing some technical difficulties right now, I'm still here to support you. What can I help you with?"
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
