package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"skillnest-ai-service/internal/models"
)

// SummaryCacheRepo caches generated video summaries so repeat requests for
// the same video and summary type skip the model call.
type SummaryCacheRepo struct {
	pool *pgxpool.Pool
}

func NewSummaryCacheRepo(pool *pgxpool.Pool) *SummaryCacheRepo {
	return &SummaryCacheRepo{pool: pool}
}

func (r *SummaryCacheRepo) Get(ctx context.Context, videoID, summaryType string) (*models.SummaryResponse, error) {
	resp := &models.SummaryResponse{}
	var keyPointsJSON []byte
	var generatedAt time.Time

	query := `SELECT video_id, summary_type, summary, key_points, ai_powered, generated_at
		FROM video_summaries WHERE video_id = $1 AND summary_type = $2`

	err := r.pool.QueryRow(ctx, query, videoID, summaryType).Scan(
		&resp.VideoID, &resp.SummaryType, &resp.Summary, &keyPointsJSON, &resp.AIPowered, &generatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(keyPointsJSON, &resp.KeyPoints); err != nil {
		return nil, err
	}
	resp.DurationCovered = "Full video"
	resp.GeneratedAt = generatedAt.Format(time.RFC3339)
	return resp, nil
}

func (r *SummaryCacheRepo) Save(ctx context.Context, resp *models.SummaryResponse) error {
	keyPointsJSON, err := json.Marshal(resp.KeyPoints)
	if err != nil {
		return err
	}

	query := `INSERT INTO video_summaries (id, video_id, summary_type, summary, key_points, ai_powered)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (video_id, summary_type) DO UPDATE SET
			summary = EXCLUDED.summary,
			key_points = EXCLUDED.key_points,
			ai_powered = EXCLUDED.ai_powered,
			generated_at = NOW()`

	_, err = r.pool.Exec(ctx, query,
		uuid.New(), resp.VideoID, resp.SummaryType, resp.Summary, keyPointsJSON, resp.AIPowered,
	)
	return err
}
