package deal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/activity"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

type dealRepo interface {
	Create(ctx context.Context, d *domain.Deal) (*domain.Deal, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Deal, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, params domain.DealUpdateParams) (*domain.Deal, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID, filter domain.DealFilter) ([]domain.Deal, error)
}

type companyRepo interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Company, error)
}

type customerRepo interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Customer, error)
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notification) bool
}

// Service implements deal pipeline operations.
type Service struct {
	log       *slog.Logger
	deals     dealRepo
	companies companyRepo
	customers customerRepo
	notifier  notifier
	exec      *activity.Executor
}

// NewService creates a new deal service instance.
func NewService(
	logger *slog.Logger,
	deals dealRepo,
	companies companyRepo,
	customers customerRepo,
	notifier notifier,
	exec *activity.Executor,
) *Service {
	return &Service{
		log:       logger.With("service", "deal"),
		deals:     deals,
		companies: companies,
		customers: customers,
		notifier:  notifier,
		exec:      exec,
	}
}
