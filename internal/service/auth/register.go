package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/activity"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

// Register creates a user with email + password authentication and default
// notification settings, then issues an access token.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	newUser := &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
	}

	// The new user is the actor of their own registration.
	user, err := activity.Run(ctx, s.exec, activity.Mutation[*domain.User]{
		EntityType: domain.EntityTypeUser,
		EntityID:   newUser.ID.String(),
		Action:     domain.AuditActionCreate,
		UserID:     newUser.ID,
		Operation: func(ctx context.Context) (*domain.User, error) {
			var created *domain.User
			err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
				u, err := s.users.Create(txCtx, newUser)
				if err != nil {
					return fmt.Errorf("create user: %w", err)
				}
				if _, err := s.settings.Upsert(txCtx, domain.DefaultNotificationSettings(u.ID)); err != nil {
					return fmt.Errorf("create notification settings: %w", err)
				}
				created = u
				return nil
			})
			return created, err
		},
		Current:  activity.ResultSnapshot[*domain.User],
		Metadata: activity.RequestMetadata(ctx, map[string]any{"operation": "register"}),
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()))

	return result, nil
}
