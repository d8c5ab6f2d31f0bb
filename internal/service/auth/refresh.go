package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lmdrew96/FeyForge-sub001/internal/auth"
	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

// Refresh performs token rotation and returns new access/refresh tokens.
// A token that is unknown, revoked or expired, or whose user is gone, yields
// ErrUnauthenticated.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	token, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh token reuse attempted")
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if !token.Usable(s.clock.Now()) {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user", slog.String("user_id", token.UserID))
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
		return nil, fmt.Errorf("auth.Refresh revoke token: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}
	return result, nil
}
