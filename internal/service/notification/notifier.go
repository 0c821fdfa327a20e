package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

type publisher interface {
	Publish(ctx context.Context, n domain.Notification) error
}

// Notifier delivers notifications that the recipient's settings allow.
// Delivery is best effort: failures are logged and never returned.
type Notifier struct {
	log      *slog.Logger
	settings settingsRepo
	pub      publisher
	now      func() time.Time
}

// NewNotifier creates a Notifier.
func NewNotifier(logger *slog.Logger, settings settingsRepo, pub publisher) *Notifier {
	return &Notifier{
		log:      logger.With("component", "notifier"),
		settings: settings,
		pub:      pub,
		now:      time.Now,
	}
}

// Notify publishes n if the recipient accepts notifications of its kind.
// It reports whether the notification was handed to the publisher.
func (n *Notifier) Notify(ctx context.Context, msg domain.Notification) bool {
	settings, err := loadSettings(ctx, n.settings, msg.RecipientID)
	if err != nil {
		n.log.WarnContext(ctx, "notification.settings_failed",
			slog.String("recipient_id", msg.RecipientID.String()),
			slog.String("error", err.Error()))
		return false
	}
	if !settings.Allows(msg.Kind) {
		return false
	}

	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = n.now().UTC()
	}

	if err := n.pub.Publish(ctx, msg); err != nil {
		n.log.WarnContext(ctx, "notification.publish_failed",
			slog.String("kind", string(msg.Kind)),
			slog.String("recipient_id", msg.RecipientID.String()),
			slog.String("error", err.Error()))
		return false
	}
	return true
}
