package deal

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

// Create adds a deal owned by the authenticated user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Deal, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.checkLinks(ctx, userID, input.CompanyID, input.ContactID); err != nil {
		return nil, err
	}

	d := &domain.Deal{
		ID:        uuid.New(),
		OwnerID:   userID,
		Name:      input.Name,
		CompanyID: input.CompanyID,
		ContactID: input.ContactID,
		Stage:     input.Stage,
		Amount:    input.Amount,
		Currency:  input.Currency,
		Priority:  input.Priority,
		CloseDate: input.CloseDate,
		Tags:      input.Tags,
		Notes:     input.Notes,
	}

	created, err := activity.Run(ctx, s.exec, activity.Mutation[*domain.Deal]{
		EntityType: domain.EntityTypeDeal,
		EntityID:   d.ID.String(),
		Action:     domain.AuditActionCreate,
		UserID:     userID,
		Operation: func(ctx context.Context) (*domain.Deal, error) {
			return s.deals.Create(ctx, d)
		},
		Current:  activity.ResultSnapshot[*domain.Deal],
		Metadata: activity.RequestMetadata(ctx, nil),
	})
	if err != nil {
		return nil, fmt.Errorf("deal.Create: %w", err)
	}

	s.log.InfoContext(ctx, "deal created",
		slog.String("user_id", userID.String()),
		slog.String("deal_id", created.ID.String()))

	return created, nil
}

// Get returns a deal owned by the authenticated user.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Deal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	d, err := s.deals.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("deal.Get: %w", err)
	}
	return d, nil
}

// List returns the authenticated user's deals.
func (s *Service) List(ctx context.Context, filter domain.DealFilter) ([]domain.Deal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	deals, err := s.deals.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("deal.List: %w", err)
	}
	return deals, nil
}

// Update applies a partial update to a deal. A stage change notifies the owner.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Deal, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.checkLinks(ctx, userID, input.CompanyID, input.ContactID); err != nil {
		return nil, err
	}

	updated, err := s.update(ctx, userID, id, input.params(), nil)
	if err != nil {
		return nil, fmt.Errorf("deal.Update: %w", err)
	}
	return updated, nil
}

// MoveStage moves a deal to another pipeline stage.
func (s *Service) MoveStage(ctx context.Context, id uuid.UUID, stage domain.DealStage) (*domain.Deal, error) {
	if !stage.IsValid() {
		return nil, domain.NewValidationError("stage", "invalid value")
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	updated, err := s.update(ctx, userID, id, domain.DealUpdateParams{Stage: &stage},
		map[string]any{"operation": "move_stage"})
	if err != nil {
		return nil, fmt.Errorf("deal.MoveStage: %w", err)
	}
	return updated, nil
}

func (s *Service) update(ctx context.Context, userID, id uuid.UUID, params domain.DealUpdateParams, extra map[string]any) (*domain.Deal, error) {
	var before *domain.Deal
	updated, err := activity.Run(ctx, s.exec, activity.Mutation[*domain.Deal]{
		EntityType: domain.EntityTypeDeal,
		EntityID:   id.String(),
		Action:     domain.AuditActionUpdate,
		UserID:     userID,
		Previous: activity.LoadSnapshot(func(ctx context.Context) (*domain.Deal, error) {
			var err error
			before, err = s.deals.GetByID(ctx, userID, id)
			return before, err
		}),
		Operation: func(ctx context.Context) (*domain.Deal, error) {
			return s.deals.Update(ctx, userID, id, params)
		},
		Current:  activity.ResultSnapshot[*domain.Deal],
		Metadata: activity.RequestMetadata(ctx, extra),
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "deal updated",
		slog.String("user_id", userID.String()),
		slog.String("deal_id", id.String()))

	if before != nil && before.Stage != updated.Stage {
		s.notifier.Notify(ctx, domain.Notification{
			Kind:        domain.NotificationDealStageChanged,
			RecipientID: updated.OwnerID,
			Subject:     fmt.Sprintf("Deal %q moved to %s", updated.Name, updated.Stage),
			Data: map[string]string{
				"deal_id": updated.ID.String(),
				"from":    before.Stage.String(),
				"to":      updated.Stage.String(),
			},
		})
	}

	return updated, nil
}

// Delete removes a deal.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	_, err := activity.Run(ctx, s.exec, activity.Mutation[struct{}]{
		EntityType: domain.EntityTypeDeal,
		EntityID:   id.String(),
		Action:     domain.AuditActionDelete,
		UserID:     userID,
		Previous: activity.LoadSnapshot(func(ctx context.Context) (*domain.Deal, error) {
			return s.deals.GetByID(ctx, userID, id)
		}),
		Operation: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.deals.Delete(ctx, userID, id)
		},
		Metadata: activity.RequestMetadata(ctx, nil),
	})
	if err != nil {
		return fmt.Errorf("deal.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "deal deleted",
		slog.String("user_id", userID.String()),
		slog.String("deal_id", id.String()))

	return nil
}

// checkLinks verifies that referenced records belong to the user.
func (s *Service) checkLinks(ctx context.Context, userID uuid.UUID, companyID, contactID *uuid.UUID) error {
	var errs domain.FieldErrors

	if companyID != nil {
		if _, err := s.companies.GetByID(ctx, userID, *companyID); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("deal: check company: %w", err)
			}
			errs.Add("companyId", "company not found")
		}
	}
	if contactID != nil {
		if _, err := s.customers.GetByID(ctx, userID, *contactID); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("deal: check contact: %w", err)
			}
			errs.Add("contactId", "customer not found")
		}
	}

	return errs.Err()
}
