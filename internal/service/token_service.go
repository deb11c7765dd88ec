package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/apierror"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/logger"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/model"
)

// TokenService issues access tokens and resolves them back to user IDs.
// It is stateless: tokens are never persisted or revoked.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (model.AccessToken, error) {
	token, expiresAt, err := s.manager.Generate(userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Token service: failed to generate token",
			"user_id", userID,
			"error", err.Error())
		return model.AccessToken{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return model.AccessToken{Token: token, ExpiresAt: expiresAt}, nil
}

// GetUserID verifies token and returns the user it was issued for.
func (s *TokenService) GetUserID(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.manager.Parse(token)
	switch {
	case err == nil:
		return userID, nil
	case errors.Is(err, model.ErrTokenExpired):
		s.logger.DebugContext(ctx, "Token service: token expired")
		return uuid.Nil, apierror.NewErrTokenExpired()
	default:
		s.logger.DebugContext(ctx, "Token service: token rejected",
			"error", err.Error())
		return uuid.Nil, apierror.NewErrInvalidAuthorizationToken()
	}
}
