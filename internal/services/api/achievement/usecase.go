package achievement

import (
	"context"

	"github.com/hanlingo/hanlingo/internal/domain/achievement"
)

type Usecase struct {
	repo achievement.Repo
}

func NewUsecase(repo achievement.Repo) *Usecase {
	return &Usecase{repo: repo}
}

func (u *Usecase) List(ctx context.Context) ([]*achievement.Achievement, error) {
	return u.repo.List(ctx)
}

func (u *Usecase) ListEarnedByUser(ctx context.Context, userID int64) ([]*achievement.Earned, error) {
	return u.repo.ListEarnedByUser(ctx, userID)
}
