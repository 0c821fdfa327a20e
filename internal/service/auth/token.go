package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

// ValidateToken validates an access token and returns the user ID.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	identity, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", "error", err)
		return uuid.Nil, domain.ErrUnauthorized
	}
	return identity.UserID, nil
}
