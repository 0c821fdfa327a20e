package company

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/activity"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

// companyRepo defines the company repository interface needed by company service.
type companyRepo interface {
	Create(ctx context.Context, c *domain.Company) (*domain.Company, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Company, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, params domain.CompanyUpdateParams) (*domain.Company, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID, filter domain.CompanyFilter) ([]domain.Company, error)
}

// Service implements company operations. Every mutation is recorded in the
// activity log.
type Service struct {
	log       *slog.Logger
	companies companyRepo
	exec      *activity.Executor
}

// NewService creates a new company service instance.
func NewService(logger *slog.Logger, companies companyRepo, exec *activity.Executor) *Service {
	return &Service{
		log:       logger.With("service", "company"),
		companies: companies,
		exec:      exec,
	}
}
