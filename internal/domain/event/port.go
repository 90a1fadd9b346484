package event

import "context"

// Publisher is the outbound event port. Publications are best-effort from the
// caller's point of view: usecases log failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
}
