package postgres

import (
	"context"
	"fmt"

	"github.com/hanlingo/hanlingo/internal/domain/progress"
)

var _ progress.Repo = (*ProgressRepo)(nil)

type ProgressRepo struct{ db *DB }

func NewProgressRepo(db *DB) *ProgressRepo { return &ProgressRepo{db: db} }

const (
	qPMarkLearned = `
INSERT INTO user_progress (user_id, content_type, content_id, is_learned, learned_at)
VALUES ($1, $2, $3, TRUE, NOW())
ON CONFLICT (user_id, content_type, content_id) DO UPDATE
SET is_learned = TRUE, learned_at = NOW();`

	qPListByUser = `
SELECT id, user_id, content_type, content_id, is_learned, learned_at
FROM user_progress
WHERE user_id = $1
ORDER BY id;`
)

func (r *ProgressRepo) MarkLearned(ctx context.Context, userID int64, ct progress.ContentType, contentID int64) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if _, err := r.db.Pool.Exec(ctx, qPMarkLearned, userID, ct, contentID); err != nil {
		return fmt.Errorf("mark learned: %w", err)
	}
	return nil
}

func (r *ProgressRepo) ListByUser(ctx context.Context, userID int64) ([]*progress.Entry, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Pool.Query(ctx, qPListByUser, userID)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	defer rows.Close()

	var out []*progress.Entry
	for rows.Next() {
		var e progress.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.ContentType, &e.ContentID, &e.IsLearned, &e.LearnedAt); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}
