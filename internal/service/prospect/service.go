package prospect

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/activity"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

type prospectRepo interface {
	Create(ctx context.Context, p *domain.Prospect) (*domain.Prospect, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Prospect, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, params domain.ProspectUpdateParams) (*domain.Prospect, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID, filter domain.ProspectFilter) ([]domain.Prospect, error)
}

type customerRepo interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
}

type companyRepo interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Company, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements prospect operations, including conversion into a customer.
type Service struct {
	log       *slog.Logger
	prospects prospectRepo
	customers customerRepo
	companies companyRepo
	tx        txManager
	exec      *activity.Executor
}

// NewService creates a new prospect service instance.
func NewService(
	logger *slog.Logger,
	prospects prospectRepo,
	customers customerRepo,
	companies companyRepo,
	tx txManager,
	exec *activity.Executor,
) *Service {
	return &Service{
		log:       logger.With("service", "prospect"),
		prospects: prospects,
		customers: customers,
		companies: companies,
		tx:        tx,
		exec:      exec,
	}
}
