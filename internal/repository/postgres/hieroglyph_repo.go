package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hanlingo/hanlingo/internal/domain/content"
)

var _ content.Repo = (*HieroglyphRepo)(nil)

type HieroglyphRepo struct{ db *DB }

func NewHieroglyphRepo(db *DB) *HieroglyphRepo { return &HieroglyphRepo{db: db} }

const (
	qHInsert = `
INSERT INTO hieroglyphs (character, pinyin, translation, example)
VALUES ($1, $2, $3, $4)
RETURNING id;`

	qHByID = `
SELECT id, character, pinyin, translation, example
FROM hieroglyphs
WHERE id = $1;`

	qHList = `
SELECT id, character, pinyin, translation, example
FROM hieroglyphs
ORDER BY id;`
)

func (r *HieroglyphRepo) Create(ctx context.Context, h *content.Hieroglyph) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if err := r.db.Pool.QueryRow(ctx, qHInsert, h.Character, h.Pinyin, h.Translation, h.Example).Scan(&h.ID); err != nil {
		return fmt.Errorf("insert hieroglyph: %w", err)
	}
	return nil
}

func (r *HieroglyphRepo) GetByID(ctx context.Context, id int64) (*content.Hieroglyph, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var h content.Hieroglyph
	if err := r.db.Pool.QueryRow(ctx, qHByID, id).
		Scan(&h.ID, &h.Character, &h.Pinyin, &h.Translation, &h.Example); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan hieroglyph: %w", err)
	}
	return &h, nil
}

func (r *HieroglyphRepo) List(ctx context.Context) ([]*content.Hieroglyph, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Pool.Query(ctx, qHList)
	if err != nil {
		return nil, fmt.Errorf("query hieroglyphs: %w", err)
	}
	defer rows.Close()

	var out []*content.Hieroglyph
	for rows.Next() {
		var h content.Hieroglyph
		if err := rows.Scan(&h.ID, &h.Character, &h.Pinyin, &h.Translation, &h.Example); err != nil {
			return nil, fmt.Errorf("scan hieroglyph: %w", err)
		}
		out = append(out, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}
