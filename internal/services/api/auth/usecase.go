package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	domainauth "github.com/hanlingo/hanlingo/internal/domain/auth"
	"github.com/hanlingo/hanlingo/internal/domain/event"
	"github.com/hanlingo/hanlingo/internal/domain/user"
	"github.com/hanlingo/hanlingo/internal/obs"
	"github.com/hanlingo/hanlingo/internal/obs/retry"
	pg "github.com/hanlingo/hanlingo/internal/repository/postgres"
)

var (
	ErrInvalidCredentials = errors.New("invalid nickname or password")
	ErrNicknameTaken      = errors.New("nickname already registered")
	ErrValidation         = errors.New("invalid input")
	ErrSessionInvalid     = errors.New("refresh session invalid")
	ErrSessionExpired     = errors.New("refresh session expired")
)

type Config struct {
	RefreshTTL time.Duration
	Now        func() time.Time
}

type Usecase struct {
	users    user.Repo
	sessions domainauth.SessionRepo
	tokens   *TokenManager
	events   event.Publisher
	cfg      Config
	log      *zap.Logger
}

func NewUsecase(users user.Repo, sessions domainauth.SessionRepo, tokens *TokenManager, events event.Publisher, cfg Config, log *zap.Logger) *Usecase {
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Now().UTC() }
	}
	if events == nil {
		events = nopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{users: users, sessions: sessions, tokens: tokens, events: events, cfg: cfg, log: log}
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, any) error { return nil }

func normalizeNickname(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (u *Usecase) Register(ctx context.Context, nickname, password string) (*user.User, domainauth.TokenPair, error) {
	nickname = normalizeNickname(nickname)
	if nickname == "" || password == "" {
		return nil, domainauth.TokenPair{}, ErrValidation
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, domainauth.TokenPair{}, err
	}
	rec := &user.User{Nickname: nickname, PasswordHash: hash, Role: user.RoleUser}
	if err := u.users.Create(ctx, rec); err != nil {
		if errors.Is(err, pg.ErrConflict) {
			return nil, domainauth.TokenPair{}, ErrNicknameTaken
		}
		return nil, domainauth.TokenPair{}, err
	}

	pair, err := u.issueTokens(ctx, rec.ID)
	if err != nil {
		return nil, domainauth.TokenPair{}, err
	}

	u.publish(ctx, fmt.Sprintf("user:%d", rec.ID), event.UserRegistered{
		Type:       event.TypeUserRegistered,
		UserID:     rec.ID,
		Nickname:   rec.Nickname,
		OccurredAt: u.cfg.Now(),
	})
	return rec, pair, nil
}

// Login deliberately returns the same error for an unknown nickname and a
// wrong password.
func (u *Usecase) Login(ctx context.Context, nickname, password string) (*user.User, domainauth.TokenPair, error) {
	nickname = normalizeNickname(nickname)
	rec, err := u.users.GetByNickname(ctx, nickname)
	if err != nil {
		if errors.Is(err, pg.ErrNotFound) {
			return nil, domainauth.TokenPair{}, ErrInvalidCredentials
		}
		return nil, domainauth.TokenPair{}, err
	}
	ok, err := CheckPassword(rec.PasswordHash, password)
	if err != nil {
		return nil, domainauth.TokenPair{}, err
	}
	if !ok {
		return nil, domainauth.TokenPair{}, ErrInvalidCredentials
	}
	pair, err := u.issueTokens(ctx, rec.ID)
	if err != nil {
		return nil, domainauth.TokenPair{}, err
	}
	return rec, pair, nil
}

// Refresh rotates a refresh token. Consume removes the session in the same
// statement that finds it, so a token can fund at most one rotation no matter
// how many callers race on it.
func (u *Usecase) Refresh(ctx context.Context, raw string) (domainauth.TokenPair, error) {
	if raw == "" {
		return domainauth.TokenPair{}, ErrSessionInvalid
	}
	sess, err := u.sessions.Consume(ctx, raw)
	if err != nil {
		if errors.Is(err, pg.ErrNotFound) {
			return domainauth.TokenPair{}, ErrSessionInvalid
		}
		return domainauth.TokenPair{}, err
	}
	if sess.Expired(u.cfg.Now()) {
		return domainauth.TokenPair{}, ErrSessionExpired
	}
	return u.issueTokens(ctx, sess.UserID)
}

// Logout deletes the session if it exists. Unknown tokens are a no-op.
func (u *Usecase) Logout(ctx context.Context, raw string) error {
	if raw == "" {
		return nil
	}
	return u.sessions.Delete(ctx, raw)
}

// issueTokens reads the user's role from storage at every issuance so a role
// change takes effect no later than the next token.
func (u *Usecase) issueTokens(ctx context.Context, userID int64) (domainauth.TokenPair, error) {
	rec, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return domainauth.TokenPair{}, fmt.Errorf("load user %d: %w", userID, err)
	}

	now := u.cfg.Now()
	access, err := u.tokens.IssueAccess(now, rec.ID, rec.Role)
	if err != nil {
		return domainauth.TokenPair{}, err
	}

	refresh, err := NewRefreshToken()
	if err != nil {
		return domainauth.TokenPair{}, err
	}
	sess := &domainauth.RefreshSession{
		UserID:    rec.ID,
		Token:     refresh,
		IssuedAt:  now,
		ExpiresAt: now.Add(u.cfg.RefreshTTL),
	}
	if err := u.sessions.Create(ctx, sess); err != nil {
		return domainauth.TokenPair{}, fmt.Errorf("save refresh session: %w", err)
	}
	return domainauth.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (u *Usecase) publish(ctx context.Context, key string, evt any) {
	err := retry.Do(ctx, func() error {
		return u.events.Publish(ctx, key, evt)
	}, retry.PublishPolicy(obs.WithTrace(ctx, u.log)))
	if err != nil {
		u.log.Warn("event publish failed", zap.String("key", key), zap.Error(err))
	}
}
