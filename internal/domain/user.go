package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID `db:"id"            json:"id"`
	Email        string    `db:"email"         json:"email"`
	Name         string    `db:"name"          json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at"    json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at"    json:"updatedAt"`
}

func (u User) EntityIdentifier() string { return u.ID.String() }

// NotificationSettings holds per-user email notification preferences.
type NotificationSettings struct {
	UserID       uuid.UUID `db:"user_id"       json:"userId"`
	EmailEnabled bool      `db:"email_enabled" json:"emailEnabled"`
	DealUpdates  bool      `db:"deal_updates"  json:"dealUpdates"`
	TodoReminder bool      `db:"todo_reminder" json:"todoReminder"`
	WeeklyDigest bool      `db:"weekly_digest" json:"weeklyDigest"`
	QuietHours   bool      `db:"quiet_hours"   json:"quietHours"`
	UpdatedAt    time.Time `db:"updated_at"    json:"updatedAt"`
}

func (s NotificationSettings) EntityIdentifier() string { return s.UserID.String() }

// DefaultNotificationSettings returns settings for a user who never saved any.
func DefaultNotificationSettings(userID uuid.UUID) NotificationSettings {
	return NotificationSettings{
		UserID:       userID,
		EmailEnabled: true,
		DealUpdates:  true,
		TodoReminder: true,
		WeeklyDigest: false,
	}
}

// Allows reports whether a notification of the given kind may be sent.
func (s NotificationSettings) Allows(kind NotificationKind) bool {
	if !s.EmailEnabled || s.QuietHours {
		return false
	}
	switch kind {
	case NotificationDealStageChanged:
		return s.DealUpdates
	case NotificationTodoAssigned:
		return s.TodoReminder
	}
	return false
}

// NotificationKind identifies an outbound notification template.
type NotificationKind string

const (
	NotificationDealStageChanged NotificationKind = "deal.stage_changed"
	NotificationTodoAssigned     NotificationKind = "todo.assigned"
)

// Notification is a message handed to the outbound notification channel.
type Notification struct {
	ID          uuid.UUID         `json:"id"`
	Kind        NotificationKind  `json:"kind"`
	RecipientID uuid.UUID         `json:"recipientId"`
	Subject     string            `json:"subject"`
	Data        map[string]string `json:"data,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}
