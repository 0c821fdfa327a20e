package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/stats"
)

type statsService interface {
	Dashboard(ctx context.Context, input stats.RangeInput) (*domain.DashboardStats, error)
}

type activityService interface {
	ListForEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit, offset int) ([]domain.ActivityLogEntry, error)
	Mine(ctx context.Context, limit, offset int) ([]domain.ActivityLogEntry, error)
}

// InsightsHandler serves dashboard statistics and the activity feed.
type InsightsHandler struct {
	stats    statsService
	activity activityService
	log      *slog.Logger
}

func NewInsightsHandler(stats statsService, activity activityService, logger *slog.Logger) *InsightsHandler {
	return &InsightsHandler{stats: stats, activity: activity, log: logger.With("handler", "insights")}
}

// Dashboard handles GET /dashboard/stats?range=&from=&to=.
func (h *InsightsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := stats.RangeInput{
		Range: q.raw("range"),
		From:  q.Time("from"),
		To:    q.Time("to"),
	}
	if err := q.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	s, err := h.stats.Dashboard(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// EntityActivity handles GET /activity?entityType=&entityId=&limit=&offset=.
func (h *InsightsHandler) EntityActivity(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	entityType := domain.EntityType(strings.ToUpper(q.raw("entityType")))
	entityID := q.raw("entityId")
	limit, offset := q.Page()
	if err := q.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.activity.ListForEntity(r.Context(), entityType, entityID, limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(entries))
}

// MyActivity handles GET /activity/me?limit=&offset=.
func (h *InsightsHandler) MyActivity(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	limit, offset := q.Page()
	if err := q.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.activity.Mine(r.Context(), limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(entries))
}
