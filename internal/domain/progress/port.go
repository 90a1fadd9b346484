package progress

import "context"

type Repo interface {
	// MarkLearned upserts the (user, content) pair: repeated marks refresh
	// learned_at instead of inserting duplicates.
	MarkLearned(ctx context.Context, userID int64, ct ContentType, contentID int64) error
	ListByUser(ctx context.Context, userID int64) ([]*Entry, error)
}
