package todo

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/activity"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

type todoRepo interface {
	Create(ctx context.Context, td *domain.Todo) (*domain.Todo, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Todo, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, params domain.TodoUpdateParams) (*domain.Todo, error)
	BulkUpdateStatus(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID, status domain.TodoStatus) (int64, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID, filter domain.TodoFilter) ([]domain.Todo, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// linkChecker reports whether a deal, customer or prospect belongs to the owner.
type linkChecker interface {
	Exists(ctx context.Context, ownerID uuid.UUID, entity domain.EntityType, id uuid.UUID) (bool, error)
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notification) bool
}

// Service implements todo operations.
type Service struct {
	log      *slog.Logger
	todos    todoRepo
	users    userRepo
	links    linkChecker
	notifier notifier
	exec     *activity.Executor
}

// NewService creates a new todo service instance.
func NewService(
	logger *slog.Logger,
	todos todoRepo,
	users userRepo,
	links linkChecker,
	notifier notifier,
	exec *activity.Executor,
) *Service {
	return &Service{
		log:      logger.With("service", "todo"),
		todos:    todos,
		users:    users,
		links:    links,
		notifier: notifier,
		exec:     exec,
	}
}
