package company

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/activity"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/pkg/ctxutil"
)

// Create adds a company owned by the authenticated user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Company, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c := &domain.Company{
		ID:       uuid.New(),
		OwnerID:  userID,
		Name:     input.Name,
		Industry: input.Industry,
		Website:  input.Website,
		Email:    input.Email,
		Phone:    input.Phone,
		Address:  input.Address,
		Status:   input.Status,
		Notes:    input.Notes,
	}

	created, err := activity.Run(ctx, s.exec, activity.Mutation[*domain.Company]{
		EntityType: domain.EntityTypeCompany,
		EntityID:   c.ID.String(),
		Action:     domain.AuditActionCreate,
		UserID:     userID,
		Operation: func(ctx context.Context) (*domain.Company, error) {
			return s.companies.Create(ctx, c)
		},
		Current:  activity.ResultSnapshot[*domain.Company],
		Metadata: activity.RequestMetadata(ctx, nil),
	})
	if err != nil {
		return nil, fmt.Errorf("company.Create: %w", err)
	}

	s.log.InfoContext(ctx, "company created",
		slog.String("user_id", userID.String()),
		slog.String("company_id", created.ID.String()))

	return created, nil
}

// Get returns a company owned by the authenticated user.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.companies.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("company.Get: %w", err)
	}
	return c, nil
}

// List returns the authenticated user's companies.
func (s *Service) List(ctx context.Context, filter domain.CompanyFilter) ([]domain.Company, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	companies, err := s.companies.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("company.List: %w", err)
	}
	return companies, nil
}

// Update applies a partial update to a company.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Company, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	updated, err := activity.Run(ctx, s.exec, activity.Mutation[*domain.Company]{
		EntityType: domain.EntityTypeCompany,
		EntityID:   id.String(),
		Action:     domain.AuditActionUpdate,
		UserID:     userID,
		Previous: activity.LoadSnapshot(func(ctx context.Context) (*domain.Company, error) {
			return s.companies.GetByID(ctx, userID, id)
		}),
		Operation: func(ctx context.Context) (*domain.Company, error) {
			return s.companies.Update(ctx, userID, id, input.params())
		},
		Current:  activity.ResultSnapshot[*domain.Company],
		Metadata: activity.RequestMetadata(ctx, nil),
	})
	if err != nil {
		return nil, fmt.Errorf("company.Update: %w", err)
	}

	s.log.InfoContext(ctx, "company updated",
		slog.String("user_id", userID.String()),
		slog.String("company_id", id.String()))

	return updated, nil
}

// Delete removes a company. Linked customers and deals keep their rows with
// the company reference cleared.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	_, err := activity.Run(ctx, s.exec, activity.Mutation[struct{}]{
		EntityType: domain.EntityTypeCompany,
		EntityID:   id.String(),
		Action:     domain.AuditActionDelete,
		UserID:     userID,
		Previous: activity.LoadSnapshot(func(ctx context.Context) (*domain.Company, error) {
			return s.companies.GetByID(ctx, userID, id)
		}),
		Operation: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.companies.Delete(ctx, userID, id)
		},
		Metadata: activity.RequestMetadata(ctx, nil),
	})
	if err != nil {
		return fmt.Errorf("company.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "company deleted",
		slog.String("user_id", userID.String()),
		slog.String("company_id", id.String()))

	return nil
}
