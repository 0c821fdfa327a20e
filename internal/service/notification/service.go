// Package notification manages per-user notification settings and delivers
// notifications that those settings allow.
package notification

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

type settingsRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.NotificationSettings, error)
	Upsert(ctx context.Context, s domain.NotificationSettings) (*domain.NotificationSettings, error)
}

// Service reads and updates notification settings.
type Service struct {
	log      *slog.Logger
	settings settingsRepo
	exec     *activity.Executor
}

// NewService creates a new notification settings service.
func NewService(logger *slog.Logger, settings settingsRepo, exec *activity.Executor) *Service {
	return &Service{
		log:      logger.With("service", "notification"),
		settings: settings,
		exec:     exec,
	}
}

// UpdateInput holds a partial settings update. A nil field is left unchanged.
type UpdateInput struct {
	EmailEnabled *bool
	DealUpdates  *bool
	TodoReminder *bool
	WeeklyDigest *bool
	QuietHours   *bool
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	if i.EmailEnabled == nil && i.DealUpdates == nil && i.TodoReminder == nil &&
		i.WeeklyDigest == nil && i.QuietHours == nil {
		return domain.NewValidationError("input", "at least one field must be set")
	}
	return nil
}

func (i UpdateInput) apply(s domain.NotificationSettings) domain.NotificationSettings {
	set := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	set(&s.EmailEnabled, i.EmailEnabled)
	set(&s.DealUpdates, i.DealUpdates)
	set(&s.TodoReminder, i.TodoReminder)
	set(&s.WeeklyDigest, i.WeeklyDigest)
	set(&s.QuietHours, i.QuietHours)
	return s
}

// Get returns the authenticated user's settings, or the defaults if none
// were saved yet.
func (s *Service) Get(ctx context.Context) (*domain.NotificationSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	settings, err := loadSettings(ctx, s.settings, userID)
	if err != nil {
		return nil, fmt.Errorf("notification.Get: %w", err)
	}
	return settings, nil
}

// Update merges input into the current settings and stores the result.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.NotificationSettings, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var current *domain.NotificationSettings
	updated, err := activity.Run(ctx, s.exec, activity.Mutation[*domain.NotificationSettings]{
		EntityType: domain.EntityTypeNotificationSettings,
		EntityID:   userID.String(),
		Action:     domain.AuditActionUpdate,
		UserID:     userID,
		Previous: func(ctx context.Context) (domain.Snapshot, error) {
			var err error
			if current, err = loadSettings(ctx, s.settings, userID); err != nil {
				return nil, err
			}
			return domain.SnapshotOf(current)
		},
		Operation: func(ctx context.Context) (*domain.NotificationSettings, error) {
			return s.settings.Upsert(ctx, input.apply(*current))
		},
		Current:  activity.ResultSnapshot[*domain.NotificationSettings],
		Metadata: activity.RequestMetadata(ctx, nil),
	})
	if err != nil {
		return nil, fmt.Errorf("notification.Update: %w", err)
	}

	s.log.InfoContext(ctx, "notification settings updated",
		slog.String("user_id", userID.String()))

	return updated, nil
}

func loadSettings(ctx context.Context, repo settingsRepo, userID uuid.UUID) (*domain.NotificationSettings, error) {
	settings, err := repo.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		def := domain.DefaultNotificationSettings(userID)
		return &def, nil
	}
	return settings, err
}
