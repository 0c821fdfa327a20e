package activitylog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/pkg/ctxutil"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// activityRepo defines the activity log reads needed by the service.
type activityRepo interface {
	List(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityLogEntry, error)
}

// Service exposes the activity log to its authors. A user only ever sees the
// entries they performed.
type Service struct {
	log  *slog.Logger
	repo activityRepo
}

// NewService creates a new activity log read service.
func NewService(logger *slog.Logger, repo activityRepo) *Service {
	return &Service{
		log:  logger.With("service", "activitylog"),
		repo: repo,
	}
}

// ListForEntity returns the caller's entries for one entity, newest first.
func (s *Service) ListForEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit, offset int) ([]domain.ActivityLogEntry, error) {
	entityID = strings.TrimSpace(entityID)

	var errs domain.FieldErrors
	if !entityType.IsValid() {
		errs.Add("entityType", "invalid entity type")
	}
	if entityID == "" {
		errs.Add("entityId", "required")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.repo.List(ctx, domain.ActivityFilter{
		EntityType:    &entityType,
		EntityID:      &entityID,
		PerformedByID: &userID,
		Limit:         clampLimit(limit),
		Offset:        max(offset, 0),
	})
	if err != nil {
		return nil, fmt.Errorf("activitylog.ListForEntity: %w", err)
	}
	return entries, nil
}

// Mine returns the caller's own entries across all entities, newest first.
func (s *Service) Mine(ctx context.Context, limit, offset int) ([]domain.ActivityLogEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.repo.List(ctx, domain.ActivityFilter{
		PerformedByID: &userID,
		Limit:         clampLimit(limit),
		Offset:        max(offset, 0),
	})
	if err != nil {
		return nil, fmt.Errorf("activitylog.Mine: %w", err)
	}
	return entries, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultLimit
	case limit > maxLimit:
		return maxLimit
	default:
		return limit
	}
}
