// Package notification implements notification settings persistence using PostgreSQL.
package notification

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

const table = "notification_settings"

var columns = []string{
	"user_id", "email_enabled", "deal_updates", "todo_reminder",
	"weekly_digest", "quiet_hours", "updated_at",
}

// Repo provides notification settings persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new notification settings repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the stored settings for userID, or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.NotificationSettings, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID})

	got, err := postgres.GetOne[domain.NotificationSettings](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "notification_settings", userID)
	}
	return got, nil
}

// Upsert stores s, replacing any previous row for the same user.
func (r *Repo) Upsert(ctx context.Context, s domain.NotificationSettings) (*domain.NotificationSettings, error) {
	query := postgres.Builder().
		Insert(table).
		Columns("user_id", "email_enabled", "deal_updates", "todo_reminder", "weekly_digest", "quiet_hours").
		Values(s.UserID, s.EmailEnabled, s.DealUpdates, s.TodoReminder, s.WeeklyDigest, s.QuietHours).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			email_enabled = EXCLUDED.email_enabled,
			deal_updates  = EXCLUDED.deal_updates,
			todo_reminder = EXCLUDED.todo_reminder,
			weekly_digest = EXCLUDED.weekly_digest,
			quiet_hours   = EXCLUDED.quiet_hours,
			updated_at    = now()
		RETURNING ` + strings.Join(columns, ", "))

	got, err := postgres.GetOne[domain.NotificationSettings](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "notification_settings", s.UserID)
	}
	return got, nil
}
