package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hanlingo/hanlingo/internal/domain/auth"
)

var _ auth.SessionRepo = (*RefreshSessionRepo)(nil)

type RefreshSessionRepo struct{ db *DB }

func NewRefreshSessionRepo(db *DB) *RefreshSessionRepo { return &RefreshSessionRepo{db: db} }

const (
	qRSCreate = `
INSERT INTO refresh_sessions (user_id, token, issued_at, expires_at)
VALUES ($1, $2, $3, $4)
RETURNING id;`

	qRSFind = `
SELECT id, user_id, token, issued_at, expires_at
FROM refresh_sessions
WHERE token = $1;`

	// Single conditional delete: of any number of concurrent callers holding
	// the same token, exactly one gets the row back.
	qRSConsume = `
DELETE FROM refresh_sessions
WHERE token = $1
RETURNING id, user_id, token, issued_at, expires_at;`

	qRSDelete = `DELETE FROM refresh_sessions WHERE token = $1;`
)

func (r *RefreshSessionRepo) Create(ctx context.Context, s *auth.RefreshSession) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if err := r.db.Pool.QueryRow(ctx, qRSCreate, s.UserID, s.Token, s.IssuedAt, s.ExpiresAt).Scan(&s.ID); err != nil {
		return fmt.Errorf("insert refresh session: %w", err)
	}
	return nil
}

func (r *RefreshSessionRepo) Find(ctx context.Context, token string) (*auth.RefreshSession, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var s auth.RefreshSession
	if err := scanSession(r.db.Pool.QueryRow(ctx, qRSFind, token), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *RefreshSessionRepo) Consume(ctx context.Context, token string) (*auth.RefreshSession, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var s auth.RefreshSession
	if err := scanSession(r.db.Pool.QueryRow(ctx, qRSConsume, token), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *RefreshSessionRepo) Delete(ctx context.Context, token string) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if _, err := r.db.Pool.Exec(ctx, qRSDelete, token); err != nil {
		return fmt.Errorf("delete refresh session: %w", err)
	}
	return nil
}

func scanSession(row pgx.Row, out *auth.RefreshSession) error {
	if err := row.Scan(&out.ID, &out.UserID, &out.Token, &out.IssuedAt, &out.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("scan refresh session: %w", err)
	}
	return nil
}
