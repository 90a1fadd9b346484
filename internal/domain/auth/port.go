package auth

import "context"

type SessionRepo interface {
	Create(ctx context.Context, s *RefreshSession) error
	Find(ctx context.Context, token string) (*RefreshSession, error)

	// Consume deletes the session row for token and returns it in one
	// conditional statement, so two concurrent calls with the same token
	// can never both succeed.
	Consume(ctx context.Context, token string) (*RefreshSession, error)

	// Delete is idempotent: deleting a missing token is not an error.
	Delete(ctx context.Context, token string) error
}
