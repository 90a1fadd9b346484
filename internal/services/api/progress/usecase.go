package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hanlingo/hanlingo/internal/domain/event"
	"github.com/hanlingo/hanlingo/internal/domain/progress"
	"github.com/hanlingo/hanlingo/internal/obs"
	"github.com/hanlingo/hanlingo/internal/obs/retry"
)

var ErrValidation = errors.New("invalid input")

type Usecase struct {
	repo   progress.Repo
	events event.Publisher
	log    *zap.Logger
}

func NewUsecase(repo progress.Repo, events event.Publisher, log *zap.Logger) *Usecase {
	if events == nil {
		events = nopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{repo: repo, events: events, log: log}
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, any) error { return nil }

// MarkLearned records that the user learned one piece of content. Marking the
// same content twice refreshes the timestamp rather than failing.
func (u *Usecase) MarkLearned(ctx context.Context, userID int64, ct progress.ContentType, contentID int64) error {
	if !ct.Valid() || contentID <= 0 {
		return ErrValidation
	}
	if err := u.repo.MarkLearned(ctx, userID, ct, contentID); err != nil {
		return err
	}

	evt := event.ProgressLearned{
		Type:        event.TypeProgressLearned,
		UserID:      userID,
		ContentType: string(ct),
		ContentID:   contentID,
		OccurredAt:  time.Now().UTC(),
	}
	if err := retry.Do(ctx, func() error {
		return u.events.Publish(ctx, fmt.Sprintf("user:%d", userID), evt)
	}, retry.PublishPolicy(obs.WithTrace(ctx, u.log))); err != nil {
		u.log.Warn("event publish failed", zap.Int64("user_id", userID), zap.Error(err))
	}
	return nil
}

func (u *Usecase) ListByUser(ctx context.Context, userID int64) ([]*progress.Entry, error) {
	return u.repo.ListByUser(ctx, userID)
}
