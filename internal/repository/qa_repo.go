package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"skillnest-ai-service/internal/models"
)

// QARepo caches answered questions per video and serves question history.
type QARepo struct {
	pool *pgxpool.Pool
}

func NewQARepo(pool *pgxpool.Pool) *QARepo {
	return &QARepo{pool: pool}
}

// FindMatch looks for a previously answered question containing the asked
// text, case-insensitively.
func (r *QARepo) FindMatch(ctx context.Context, videoID, question string) (*models.QAResponse, error) {
	resp := &models.QAResponse{}
	var timestampsJSON []byte

	query := `SELECT video_id, question, answer, relevant_timestamps, confidence, ai_powered
		FROM video_qa
		WHERE video_id = $1 AND question ILIKE '%' || $2 || '%'
		ORDER BY created_at DESC LIMIT 1`

	err := r.pool.QueryRow(ctx, query, videoID, question).Scan(
		&resp.VideoID, &resp.Question, &resp.Answer, &timestampsJSON, &resp.Confidence, &resp.AIPowered,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(timestampsJSON, &resp.RelevantTimestamps); err != nil {
		return nil, err
	}
	resp.Sources = []string{"Video transcript analysis"}
	return resp, nil
}

func (r *QARepo) Save(ctx context.Context, resp *models.QAResponse) error {
	timestampsJSON, err := json.Marshal(resp.RelevantTimestamps)
	if err != nil {
		return err
	}

	query := `INSERT INTO video_qa (id, video_id, question, answer, relevant_timestamps, confidence, ai_powered)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.pool.Exec(ctx, query,
		uuid.New(), resp.VideoID, resp.Question, resp.Answer, timestampsJSON, resp.Confidence, resp.AIPowered,
	)
	return err
}

// History returns the most recent answered questions for a video.
func (r *QARepo) History(ctx context.Context, videoID string, limit int) ([]*models.QAResponse, error) {
	query := `SELECT video_id, question, answer, relevant_timestamps, confidence, ai_powered
		FROM video_qa WHERE video_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, videoID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []*models.QAResponse
	for rows.Next() {
		resp := &models.QAResponse{}
		var timestampsJSON []byte
		if err := rows.Scan(&resp.VideoID, &resp.Question, &resp.Answer, &timestampsJSON, &resp.Confidence, &resp.AIPowered); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(timestampsJSON, &resp.RelevantTimestamps); err != nil {
			return nil, err
		}
		resp.Sources = []string{"Video transcript analysis"}
		history = append(history, resp)
	}
	return history, rows.Err()
}
