package achievement

import "context"

type Repo interface {
	List(ctx context.Context) ([]*Achievement, error)
	ListEarnedByUser(ctx context.Context, userID int64) ([]*Earned, error)
}
