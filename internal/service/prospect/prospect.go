package prospect

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/activity"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/pkg/ctxutil"
)

// Create adds a prospect owned by the authenticated user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Prospect, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p := &domain.Prospect{
		ID:          uuid.New(),
		OwnerID:     userID,
		FullName:    input.FullName,
		Email:       input.Email,
		Phone:       input.Phone,
		CompanyName: input.CompanyName,
		Status:      input.Status,
		Source:      input.Source,
		Notes:       input.Notes,
	}

	created, err := activity.Run(ctx, s.exec, activity.Mutation[*domain.Prospect]{
		EntityType: domain.EntityTypeProspect,
		EntityID:   p.ID.String(),
		Action:     domain.AuditActionCreate,
		UserID:     userID,
		Operation: func(ctx context.Context) (*domain.Prospect, error) {
			return s.prospects.Create(ctx, p)
		},
		Current:  activity.ResultSnapshot[*domain.Prospect],
		Metadata: activity.RequestMetadata(ctx, nil),
	})
	if err != nil {
		return nil, fmt.Errorf("prospect.Create: %w", err)
	}

	s.log.InfoContext(ctx, "prospect created",
		slog.String("user_id", userID.String()),
		slog.String("prospect_id", created.ID.String()))

	return created, nil
}

// Get returns a prospect owned by the authenticated user.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Prospect, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.prospects.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("prospect.Get: %w", err)
	}
	return p, nil
}

// List returns the authenticated user's prospects.
func (s *Service) List(ctx context.Context, filter domain.ProspectFilter) ([]domain.Prospect, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	prospects, err := s.prospects.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("prospect.List: %w", err)
	}
	return prospects, nil
}

// Update applies a partial update to a prospect.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Prospect, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	updated, err := s.update(ctx, userID, id, input.params())
	if err != nil {
		return nil, fmt.Errorf("prospect.Update: %w", err)
	}

	s.log.InfoContext(ctx, "prospect updated",
		slog.String("user_id", userID.String()),
		slog.String("prospect_id", id.String()))

	return updated, nil
}

func (s *Service) update(ctx context.Context, userID, id uuid.UUID, params domain.ProspectUpdateParams) (*domain.Prospect, error) {
	return activity.Run(ctx, s.exec, activity.Mutation[*domain.Prospect]{
		EntityType: domain.EntityTypeProspect,
		EntityID:   id.String(),
		Action:     domain.AuditActionUpdate,
		UserID:     userID,
		Previous: activity.LoadSnapshot(func(ctx context.Context) (*domain.Prospect, error) {
			return s.prospects.GetByID(ctx, userID, id)
		}),
		Operation: func(ctx context.Context) (*domain.Prospect, error) {
			return s.prospects.Update(ctx, userID, id, params)
		},
		Current:  activity.ResultSnapshot[*domain.Prospect],
		Metadata: activity.RequestMetadata(ctx, nil),
	})
}

// Delete removes a prospect.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	_, err := activity.Run(ctx, s.exec, activity.Mutation[struct{}]{
		EntityType: domain.EntityTypeProspect,
		EntityID:   id.String(),
		Action:     domain.AuditActionDelete,
		UserID:     userID,
		Previous: activity.LoadSnapshot(func(ctx context.Context) (*domain.Prospect, error) {
			return s.prospects.GetByID(ctx, userID, id)
		}),
		Operation: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.prospects.Delete(ctx, userID, id)
		},
		Metadata: activity.RequestMetadata(ctx, nil),
	})
	if err != nil {
		return fmt.Errorf("prospect.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "prospect deleted",
		slog.String("user_id", userID.String()),
		slog.String("prospect_id", id.String()))

	return nil
}
