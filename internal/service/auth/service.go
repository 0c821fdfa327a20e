package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/activity"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/auth"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

// settingsRepo defines the notification settings repository interface needed by auth service.
type settingsRepo interface {
	Upsert(ctx context.Context, s domain.NotificationSettings) (*domain.NotificationSettings, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// tokenManager defines the access token operations needed by auth service.
type tokenManager interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, time.Time, error)
	ValidateAccessToken(token string) (auth.Identity, error)
}

// passwordHasher defines password hashing needed by auth service.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	settings settingsRepo
	tx       txManager
	tokens   tokenManager
	hasher   passwordHasher
	exec     *activity.Executor
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	settings settingsRepo,
	tx txManager,
	tokens tokenManager,
	hasher passwordHasher,
	exec *activity.Executor,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		settings: settings,
		tx:       tx,
		tokens:   tokens,
		hasher:   hasher,
		exec:     exec,
	}
}

// issueToken signs an access token for user and wraps it in an AuthResult.
func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &AuthResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}
