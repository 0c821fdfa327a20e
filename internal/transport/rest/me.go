package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/notification"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/user"
)

type profileService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
}

type notificationService interface {
	Get(ctx context.Context) (*domain.NotificationSettings, error)
	Update(ctx context.Context, input notification.UpdateInput) (*domain.NotificationSettings, error)
}

// MeHandler serves the caller's profile and notification preferences.
type MeHandler struct {
	users    profileService
	settings notificationService
	log      *slog.Logger
}

func NewMeHandler(users profileService, settings notificationService, logger *slog.Logger) *MeHandler {
	return &MeHandler{users: users, settings: settings, log: logger.With("handler", "me")}
}

type updateProfileRequest struct {
	Name string `json:"name"`
}

type updateNotificationsRequest struct {
	EmailEnabled *bool `json:"emailEnabled"`
	DealUpdates  *bool `json:"dealUpdates"`
	TodoReminder *bool `json:"todoReminder"`
	WeeklyDigest *bool `json:"weeklyDigest"`
	QuietHours   *bool `json:"quietHours"`
}

// Get handles GET /me.
func (h *MeHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Update handles PATCH /me.
func (h *MeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u, err := h.users.UpdateProfile(r.Context(), user.UpdateProfileInput{Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// GetNotifications handles GET /me/notifications.
func (h *MeHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	s, err := h.settings.Get(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// UpdateNotifications handles PATCH /me/notifications.
func (h *MeHandler) UpdateNotifications(w http.ResponseWriter, r *http.Request) {
	var req updateNotificationsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	s, err := h.settings.Update(r.Context(), notification.UpdateInput{
		EmailEnabled: req.EmailEnabled,
		DealUpdates:  req.DealUpdates,
		TodoReminder: req.TodoReminder,
		WeeklyDigest: req.WeeklyDigest,
		QuietHours:   req.QuietHours,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}
