package services

import (
	"fmt"
	"strings"

	"skillnest-ai-service/internal/models"
)

// Prompt content is kept close to what the upstream models were tuned
// against in production; changing the phrasing changes the reply shapes.

const maxPromptContentLen = 4000

// clipRunes truncates to n characters, never splitting a multibyte rune.
func clipRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func clipForPrompt(content string) string {
	return clipRunes(content, maxPromptContentLen)
}

func buildQuizPrompt(content string, settings models.QuizSettings) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("You are an expert educational quiz generator. Your task is to generate EXACTLY %d questions. No more, no less.\n\n", settings.QuestionCount))
	b.WriteString("CONTENT TO GENERATE QUESTIONS FROM:\n")
	b.WriteString(clipForPrompt(content))
	b.WriteString("\n\nSTRICT REQUIREMENTS:\n")
	b.WriteString(fmt.Sprintf("1. Generate EXACTLY %d questions - this is a hard requirement\n", settings.QuestionCount))
	b.WriteString(fmt.Sprintf("2. Difficulty level: %s\n", settings.Difficulty))
	b.WriteString("3. Each question must have exactly 4 options\n")
	b.WriteString("4. Questions should test comprehension and understanding\n")
	b.WriteString("5. Make questions specific to the content\n")
	b.WriteString("6. Avoid generic questions\n")
	b.WriteString("7. Include clear explanations\n\n")
	b.WriteString("FORMAT YOUR RESPONSE AS A VALID JSON ARRAY:\n")
	b.WriteString(fmt.Sprintf(`[
  {
    "question": "Specific question from the content?",
    "type": "mcq",
    "options": ["Specific option A", "Specific option B", "Specific option C", "Specific option D"],
    "correct_answer": "Specific option A",
    "explanation": "Clear explanation why this is correct",
    "difficulty": "%s",
    "points": 1
  },
  ... EXACTLY %d questions total
]
`, settings.Difficulty, settings.QuestionCount))
	b.WriteString(fmt.Sprintf("\nIMPORTANT: Your response must contain EXACTLY %d questions. This is critical.\n", settings.QuestionCount))

	return b.String()
}

func buildSummaryPrompt(transcript, summaryType, focusArea string) string {
	var b strings.Builder

	switch summaryType {
	case "brief":
		b.WriteString("You are an expert at creating concise educational summaries. Summarize this video transcript briefly:\n\n")
		b.WriteString("TRANSCRIPT:\n")
		b.WriteString(clipForPrompt(transcript))
		b.WriteString("\n\nREQUIREMENTS:\n")
		b.WriteString("- Create a brief, focused summary (2-3 paragraphs max)\n")
		b.WriteString("- Include only the most essential information\n")
		b.WriteString("- Perfect for quick review\n")
	case "key_points":
		b.WriteString("Extract the most important key points from this video transcript:\n\n")
		b.WriteString("TRANSCRIPT:\n")
		b.WriteString(clipForPrompt(transcript))
		b.WriteString("\n\nREQUIREMENTS:\n")
		b.WriteString("- List 5-10 key takeaways\n")
		b.WriteString("- Each point should be actionable or memorable\n")
		b.WriteString("- Focus on core concepts and practical applications\n")
	default: // detailed
		b.WriteString("You are an expert educational content summarizer. Create a comprehensive summary of this video transcript:\n\n")
		b.WriteString("TRANSCRIPT:\n")
		b.WriteString(clipForPrompt(transcript))
		b.WriteString("\n\nREQUIREMENTS:\n")
		b.WriteString("- Create a detailed summary that captures all main concepts\n")
		b.WriteString("- Organize information in logical sections\n")
		b.WriteString("- Include important examples and explanations\n")
		b.WriteString("- Highlight key learning objectives\n")
		b.WriteString("- Make it suitable for study notes\n")
	}

	if focusArea != "" {
		b.WriteString(fmt.Sprintf("- Pay particular attention to: %s\n", focusArea))
	}

	b.WriteString("\nFORMAT YOUR RESPONSE AS JSON:\n")
	b.WriteString(`{
    "summary": "Summary text here...",
    "key_points": ["Point 1", "Point 2", "Point 3"],
    "main_topics": ["Topic 1", "Topic 2"]
}
`)

	return b.String()
}

func buildQAPrompt(transcript, question string) string {
	var b strings.Builder

	b.WriteString("You are an expert educational assistant. Answer the student's question based on this video transcript:\n\n")
	b.WriteString("TRANSCRIPT:\n")
	b.WriteString(clipForPrompt(transcript))
	b.WriteString(fmt.Sprintf("\n\nSTUDENT QUESTION: %s\n\n", question))
	b.WriteString("REQUIREMENTS:\n")
	b.WriteString("- Do NOT mention \"the transcript\" in your response.\n")
	b.WriteString("- Answer directly and clearly based on the transcript content\n")
	b.WriteString("- If the transcript mentions timestamps, include relevant ones\n")
	b.WriteString("- If the answer isn't in the transcript, say so honestly\n")
	b.WriteString("- Provide additional context when helpful\n")
	b.WriteString("- Make the answer educational and comprehensive\n")
	b.WriteString("- Pretend that the user is talking to video content, not the transcript directly\n")
	b.WriteString("\nFORMAT YOUR RESPONSE AS JSON:\n")
	b.WriteString(`{
    "answer": "Clear, comprehensive answer based on video...",
    "relevant_timestamps": ["timestamp1", "timestamp2"],
    "confidence": "high/medium/low",
    "additional_info": "Any extra context or explanations..."
}
`)

	return b.String()
}

// bobbySystemPrompt sets the chatbot's persona for every conversation.
const bobbySystemPrompt = `You are Bobby, a helpful and friendly AI assistant integrated into a learning management system. You help students and educators with questions about courses, learning, and general assistance.

Key traits:
- Be concise but helpful
- Maintain a friendly, professional tone
- Remember the conversation context
- If you don't know something, admit it
- Focus on being genuinely helpful with learning and education
- Keep responses conversational and not too long
- Use emojis to enhance friendliness and engagement
- Always greet the user warmly and introduce yourself as Bobby

You're part of SkillNest, a learning management platform, so you can help with course-related questions, study tips, and general academic support.`

// RenderTranscript flattens transcript segments into prompt text, keeping
// timestamp and speaker markers when present.
func RenderTranscript(segments []models.TranscriptSegment) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		var line strings.Builder
		if segment.Timestamp != "" {
			line.WriteString("[" + segment.Timestamp + "] ")
		}
		if segment.Speaker != "" {
			line.WriteString(segment.Speaker + ": ")
		}
		line.WriteString(segment.Text)
		parts = append(parts, line.String())
	}
	return strings.Join(parts, "\n")
}
