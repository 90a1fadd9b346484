package auth

import (
	"time"
)

// RefreshSession is one stored refresh token. The token column is the opaque
// random value handed to the client; a session row exists for exactly one
// token and is deleted on first use or on logout.
type RefreshSession struct {
	ID        int64
	UserID    int64
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (s *RefreshSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
