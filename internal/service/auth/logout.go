package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lmdrew96/FeyForge-sub001/internal/auth"
	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/pkg/ctxutil"
)

// Logout revokes one refresh token. Unknown tokens are ignored so logging
// out twice succeeds.
func (s *Service) Logout(ctx context.Context, input RefreshInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	token, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("auth.Logout get token: %w", err)
	}

	if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", token.UserID))
	return nil
}

// LogoutAll revokes all refresh tokens for the authenticated user.
func (s *Service) LogoutAll(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthenticated
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.LogoutAll: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out everywhere", slog.String("user_id", userID))
	return nil
}

// ValidateToken validates an access token and returns the user ID.
func (s *Service) ValidateToken(_ context.Context, token string) (string, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return "", domain.ErrUnauthenticated
	}
	return userID, nil
}

// CurrentUser returns the authenticated user.
func (s *Service) CurrentUser(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("auth.CurrentUser: %w", err)
	}
	return user, nil
}

// CleanupExpiredTokens removes all expired or revoked refresh tokens.
// Returns the number of tokens deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	count, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens", slog.Int("count", count))
	}
	return count, nil
}
