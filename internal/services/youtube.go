package services

import (
	"fmt"
	"html"
	"strings"

	ytapi "github.com/hightemp/youtube-transcript-api-go/api"
	yt "github.com/kkdai/youtube/v2"

	"skillnest-ai-service/internal/models"
)

// YouTubeService fetches captions and metadata so lecture videos can be
// registered in the transcript library without a manual upload.
type YouTubeService struct {
	transcriptAPI *ytapi.YouTubeTranscriptApi
	ytClient      *yt.Client
}

func NewYouTubeService() *YouTubeService {
	return &YouTubeService{
		transcriptAPI: ytapi.NewYouTubeTranscriptApi(),
		ytClient:      &yt.Client{},
	}
}

// FetchTranscript returns the caption track as transcript segments, trying
// English tracks first and then any available language.
func (s *YouTubeService) FetchTranscript(videoID string) ([]models.TranscriptSegment, error) {
	transcript, err := s.transcriptAPI.GetTranscript(videoID, []string{"en", "en-US", "en-GB"})
	if err != nil {
		// Fallback: request any available language
		transcript, err = s.transcriptAPI.GetTranscript(videoID, nil)
		if err != nil {
			return nil, fmt.Errorf("no subtitles available for video %s: %w", videoID, err)
		}
	}

	if len(transcript.Entries) == 0 {
		return nil, fmt.Errorf("subtitle track is empty")
	}

	var segments []models.TranscriptSegment
	for _, entry := range transcript.Entries {
		text := strings.TrimSpace(html.UnescapeString(entry.Text))
		if text == "" {
			continue
		}
		segments = append(segments, models.TranscriptSegment{Text: text})
	}

	if len(segments) == 0 {
		return nil, fmt.Errorf("subtitle text resolved to empty content")
	}

	return segments, nil
}

// FetchMetadata returns the video title and a mm:ss duration string for
// registry entries. Metadata failures are non-fatal to registration.
func (s *YouTubeService) FetchMetadata(videoID string) (title, duration string, err error) {
	video, err := s.ytClient.GetVideo(videoID)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch YouTube video metadata: %w", err)
	}

	total := int(video.Duration.Seconds())
	duration = fmt.Sprintf("%02d:%02d", total/60, total%60)
	return video.Title, duration, nil
}
