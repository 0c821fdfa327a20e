package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/activity"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/pkg/ctxutil"
)

// Create adds a customer owned by the authenticated user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Customer, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.checkCompany(ctx, userID, input.CompanyID); err != nil {
		return nil, err
	}

	c := &domain.Customer{
		ID:        uuid.New(),
		OwnerID:   userID,
		FullName:  input.FullName,
		Email:     input.Email,
		Phone:     input.Phone,
		CompanyID: input.CompanyID,
		Status:    input.Status,
		Tags:      input.Tags,
		Notes:     input.Notes,
	}

	created, err := activity.Run(ctx, s.exec, activity.Mutation[*domain.Customer]{
		EntityType: domain.EntityTypeCustomer,
		EntityID:   c.ID.String(),
		Action:     domain.AuditActionCreate,
		UserID:     userID,
		Operation: func(ctx context.Context) (*domain.Customer, error) {
			return s.customers.Create(ctx, c)
		},
		Current:  activity.ResultSnapshot[*domain.Customer],
		Metadata: activity.RequestMetadata(ctx, nil),
	})
	if err != nil {
		return nil, fmt.Errorf("customer.Create: %w", err)
	}

	s.log.InfoContext(ctx, "customer created",
		slog.String("user_id", userID.String()),
		slog.String("customer_id", created.ID.String()))

	return created, nil
}

// Get returns a customer owned by the authenticated user.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.customers.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("customer.Get: %w", err)
	}
	return c, nil
}

// List returns the authenticated user's customers.
func (s *Service) List(ctx context.Context, filter domain.CustomerFilter) ([]domain.Customer, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	customers, err := s.customers.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("customer.List: %w", err)
	}
	return customers, nil
}

// Update applies a partial update to a customer.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Customer, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.checkCompany(ctx, userID, input.CompanyID); err != nil {
		return nil, err
	}

	updated, err := activity.Run(ctx, s.exec, activity.Mutation[*domain.Customer]{
		EntityType: domain.EntityTypeCustomer,
		EntityID:   id.String(),
		Action:     domain.AuditActionUpdate,
		UserID:     userID,
		Previous: activity.LoadSnapshot(func(ctx context.Context) (*domain.Customer, error) {
			return s.customers.GetByID(ctx, userID, id)
		}),
		Operation: func(ctx context.Context) (*domain.Customer, error) {
			return s.customers.Update(ctx, userID, id, input.params())
		},
		Current:  activity.ResultSnapshot[*domain.Customer],
		Metadata: activity.RequestMetadata(ctx, nil),
	})
	if err != nil {
		return nil, fmt.Errorf("customer.Update: %w", err)
	}

	s.log.InfoContext(ctx, "customer updated",
		slog.String("user_id", userID.String()),
		slog.String("customer_id", id.String()))

	return updated, nil
}

// Delete removes a customer.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	_, err := activity.Run(ctx, s.exec, activity.Mutation[struct{}]{
		EntityType: domain.EntityTypeCustomer,
		EntityID:   id.String(),
		Action:     domain.AuditActionDelete,
		UserID:     userID,
		Previous: activity.LoadSnapshot(func(ctx context.Context) (*domain.Customer, error) {
			return s.customers.GetByID(ctx, userID, id)
		}),
		Operation: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.customers.Delete(ctx, userID, id)
		},
		Metadata: activity.RequestMetadata(ctx, nil),
	})
	if err != nil {
		return fmt.Errorf("customer.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "customer deleted",
		slog.String("user_id", userID.String()),
		slog.String("customer_id", id.String()))

	return nil
}

// checkCompany verifies that a referenced company belongs to the user.
func (s *Service) checkCompany(ctx context.Context, userID uuid.UUID, companyID *uuid.UUID) error {
	if companyID == nil {
		return nil
	}
	if _, err := s.companies.GetByID(ctx, userID, *companyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("companyId", "company not found")
		}
		return fmt.Errorf("customer: check company: %w", err)
	}
	return nil
}
