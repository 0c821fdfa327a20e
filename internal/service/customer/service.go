package customer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/activity"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

type customerRepo interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Customer, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, params domain.CustomerUpdateParams) (*domain.Customer, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID, filter domain.CustomerFilter) ([]domain.Customer, error)
}

type companyRepo interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Company, error)
}

// Service implements customer operations.
type Service struct {
	log       *slog.Logger
	customers customerRepo
	companies companyRepo
	exec      *activity.Executor
}

// NewService creates a new customer service instance.
func NewService(logger *slog.Logger, customers customerRepo, companies companyRepo, exec *activity.Executor) *Service {
	return &Service{
		log:       logger.With("service", "customer"),
		customers: customers,
		companies: companies,
		exec:      exec,
	}
}
