package content

import (
	"context"
	"errors"
	"strings"

	"github.com/hanlingo/hanlingo/internal/domain/content"
)

var ErrValidation = errors.New("invalid input")

type Usecase struct {
	repo content.Repo
}

func NewUsecase(repo content.Repo) *Usecase {
	return &Usecase{repo: repo}
}

func (u *Usecase) Create(ctx context.Context, h *content.Hieroglyph) error {
	h.Character = strings.TrimSpace(h.Character)
	h.Pinyin = strings.TrimSpace(h.Pinyin)
	h.Translation = strings.TrimSpace(h.Translation)
	if h.Character == "" || h.Pinyin == "" || h.Translation == "" {
		return ErrValidation
	}
	return u.repo.Create(ctx, h)
}

func (u *Usecase) Get(ctx context.Context, id int64) (*content.Hieroglyph, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *Usecase) List(ctx context.Context) ([]*content.Hieroglyph, error) {
	return u.repo.List(ctx)
}
