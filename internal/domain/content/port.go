package content

import "context"

type Repo interface {
	Create(ctx context.Context, h *Hieroglyph) error
	GetByID(ctx context.Context, id int64) (*Hieroglyph, error)
	List(ctx context.Context) ([]*Hieroglyph, error)
}
