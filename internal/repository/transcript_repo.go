package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"skillnest-ai-service/internal/models"
)

// TranscriptRepo is the registry of lecture transcripts available for
// summarization and Q&A.
type TranscriptRepo struct {
	pool *pgxpool.Pool
}

func NewTranscriptRepo(pool *pgxpool.Pool) *TranscriptRepo {
	return &TranscriptRepo{pool: pool}
}

func (r *TranscriptRepo) Upsert(ctx context.Context, t *models.VideoTranscript) error {
	segmentsJSON, err := json.Marshal(t.Transcript)
	if err != nil {
		return err
	}

	query := `INSERT INTO video_transcripts (video_id, course_id, title, transcript, duration)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (video_id) DO UPDATE SET
			course_id = EXCLUDED.course_id,
			title = EXCLUDED.title,
			transcript = EXCLUDED.transcript,
			duration = EXCLUDED.duration
		RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		t.VideoID, t.CourseID, t.Title, segmentsJSON, t.Duration,
	).Scan(&t.CreatedAt)
}

func (r *TranscriptRepo) GetByVideoID(ctx context.Context, videoID string) (*models.VideoTranscript, error) {
	t := &models.VideoTranscript{}
	var segmentsJSON []byte

	query := `SELECT video_id, course_id, title, transcript, COALESCE(duration, ''), created_at
		FROM video_transcripts WHERE video_id = $1`

	err := r.pool.QueryRow(ctx, query, videoID).Scan(
		&t.VideoID, &t.CourseID, &t.Title, &segmentsJSON, &t.Duration, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(segmentsJSON, &t.Transcript); err != nil {
		return nil, err
	}
	return t, nil
}

// List returns registry entries without their segment payloads, newest first.
func (r *TranscriptRepo) List(ctx context.Context) ([]*models.VideoTranscript, error) {
	query := `SELECT video_id, course_id, title, COALESCE(duration, ''), created_at
		FROM video_transcripts ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transcripts []*models.VideoTranscript
	for rows.Next() {
		t := &models.VideoTranscript{}
		if err := rows.Scan(&t.VideoID, &t.CourseID, &t.Title, &t.Duration, &t.CreatedAt); err != nil {
			return nil, err
		}
		transcripts = append(transcripts, t)
	}
	return transcripts, rows.Err()
}
