package postgres

import (
	"context"
	"fmt"

	"github.com/hanlingo/hanlingo/internal/domain/achievement"
)

var _ achievement.Repo = (*AchievementRepo)(nil)

type AchievementRepo struct{ db *DB }

func NewAchievementRepo(db *DB) *AchievementRepo { return &AchievementRepo{db: db} }

const (
	qAList = `
SELECT id, name, description, criteria, icon
FROM achievements
ORDER BY id;`

	qAListEarned = `
SELECT a.id, a.name, a.description, a.icon, ua.achieved_at
FROM achievements a
JOIN user_achievements ua ON a.id = ua.achievement_id
WHERE ua.user_id = $1
ORDER BY ua.achieved_at;`
)

func (r *AchievementRepo) List(ctx context.Context) ([]*achievement.Achievement, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Pool.Query(ctx, qAList)
	if err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}
	defer rows.Close()

	var out []*achievement.Achievement
	for rows.Next() {
		var a achievement.Achievement
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Criteria, &a.Icon); err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (r *AchievementRepo) ListEarnedByUser(ctx context.Context, userID int64) ([]*achievement.Earned, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Pool.Query(ctx, qAListEarned, userID)
	if err != nil {
		return nil, fmt.Errorf("query earned achievements: %w", err)
	}
	defer rows.Close()

	var out []*achievement.Earned
	for rows.Next() {
		var e achievement.Earned
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Icon, &e.AchievedAt); err != nil {
			return nil, fmt.Errorf("scan earned achievement: %w", err)
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}
