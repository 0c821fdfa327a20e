package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/activity"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error)
}

// Service implements user profile operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	exec  *activity.Executor
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, exec *activity.Executor) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		exec:  exec,
	}
}
