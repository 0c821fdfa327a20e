package prospect

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

// ConvertResult is the outcome of a prospect conversion.
type ConvertResult struct {
	Customer *domain.Customer `json:"customer"`
	Prospect *domain.Prospect `json:"prospect"`
}

// Convert turns a prospect into a customer and marks the prospect CONVERTED.
// Both writes share one transaction and each is recorded as its own activity
// entry with a "converted_from"/"converted_to" link in the metadata.
func (s *Service) Convert(ctx context.Context, id uuid.UUID, input ConvertInput) (*ConvertResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if input.CompanyID != nil {
		if _, err := s.companies.GetByID(ctx, userID, *input.CompanyID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError("companyId", "company not found")
			}
			return nil, fmt.Errorf("prospect.Convert: check company: %w", err)
		}
	}

	var result ConvertResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.prospects.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}
		if p.Status == domain.ProspectStatusConverted {
			return fmt.Errorf("prospect already converted: %w", domain.ErrConflict)
		}

		c := &domain.Customer{
			ID:        uuid.New(),
			OwnerID:   userID,
			FullName:  p.FullName,
			Email:     p.Email,
			Phone:     p.Phone,
			CompanyID: input.CompanyID,
			Status:    domain.CustomerStatusActive,
			Tags:      domain.NormalizeTags(input.Tags),
			Notes:     p.Notes,
		}

		result.Customer, err = activity.Run(ctx, s.exec, activity.Mutation[*domain.Customer]{
			EntityType: domain.EntityTypeCustomer,
			EntityID:   c.ID.String(),
			Action:     domain.AuditActionCreate,
			UserID:     userID,
			Operation: func(ctx context.Context) (*domain.Customer, error) {
				return s.customers.Create(ctx, c)
			},
			Current:  activity.ResultSnapshot[*domain.Customer],
			Metadata: activity.RequestMetadata(ctx, map[string]any{"converted_from": id.String()}),
		})
		if err != nil {
			return err
		}

		converted := domain.ProspectStatusConverted
		result.Prospect, err = activity.Run(ctx, s.exec, activity.Mutation[*domain.Prospect]{
			EntityType: domain.EntityTypeProspect,
			EntityID:   id.String(),
			Action:     domain.AuditActionUpdate,
			UserID:     userID,
			Previous: func(context.Context) (domain.Snapshot, error) {
				return domain.SnapshotOf(p)
			},
			Operation: func(ctx context.Context) (*domain.Prospect, error) {
				return s.prospects.Update(ctx, userID, id, domain.ProspectUpdateParams{Status: &converted})
			},
			Current:  activity.ResultSnapshot[*domain.Prospect],
			Metadata: activity.RequestMetadata(ctx, map[string]any{"converted_to": c.ID.String()}),
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("prospect.Convert: %w", err)
	}

	s.log.InfoContext(ctx, "prospect converted",
		slog.String("user_id", userID.String()),
		slog.String("prospect_id", id.String()),
		slog.String("customer_id", result.Customer.ID.String()))

	return &result, nil
}
