package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/linkstash/bookmarks-api/internal/api/metrics"
	"github.com/linkstash/bookmarks-api/internal/core/domain"
	"github.com/linkstash/bookmarks-api/internal/core/ports"
	"github.com/linkstash/bookmarks-api/internal/pkg/hash"
	"github.com/linkstash/bookmarks-api/internal/pkg/token"
)

// AttemptLimiter abstracts the signin throttle store (Redis). A nil
// limiter disables throttling.
type AttemptLimiter interface {
	TooMany(ctx context.Context, key string) (bool, error)
	RecordFailure(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

// AuthService implements signup and signin.
type AuthService struct {
	users   ports.UserRepository
	hasher  *hash.Hasher
	tokens  *token.Service
	limiter AttemptLimiter
	logger  zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher *hash.Hasher, tokens *token.Service, limiter AttemptLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, limiter: limiter, logger: logger}
}

// Signup creates an account and returns an access token for it, so a
// fresh signup is already logged in.
func (s *AuthService) Signup(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		// ErrCredentialsTaken comes from the store's unique index on email.
		return "", err
	}

	s.logger.Info().Uint("user_id", created.ID).Msg("user signed up")
	metrics.SignupsTotal.Inc()

	return s.tokens.Issue(created.ID, created.Email)
}

// Signin verifies credentials and returns an access token. An unknown
// email and a wrong password both fail with ErrInvalidCredentials.
func (s *AuthService) Signin(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if throttled := s.throttled(ctx, email); throttled {
		metrics.SigninsTotal.WithLabelValues("throttled").Inc()
		return "", domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	ok, err := s.hasher.Verify(user.PasswordHash, password)
	if err != nil {
		return "", err
	}
	if !ok {
		s.recordFailure(ctx, email)
		return "", domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("throttle reset failed")
		}
	}

	s.logger.Info().Uint("user_id", user.ID).Msg("user signed in")
	metrics.SigninsTotal.WithLabelValues("success").Inc()

	return s.tokens.Issue(user.ID, user.Email)
}

// throttled is fail-open: a broken throttle store must not lock everyone out.
func (s *AuthService) throttled(ctx context.Context, email string) bool {
	if s.limiter == nil {
		return false
	}
	tooMany, err := s.limiter.TooMany(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Msg("throttle check failed, processing anyway")
		return false
	}
	return tooMany
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	metrics.SigninsTotal.WithLabelValues("failure").Inc()
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("throttle record failed")
	}
}
