package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/prospect"
)

type prospectService interface {
	Create(ctx context.Context, input prospect.CreateInput) (*domain.Prospect, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Prospect, error)
	List(ctx context.Context, filter domain.ProspectFilter) ([]domain.Prospect, error)
	Update(ctx context.Context, id uuid.UUID, input prospect.UpdateInput) (*domain.Prospect, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Convert(ctx context.Context, id uuid.UUID, input prospect.ConvertInput) (*prospect.ConvertResult, error)
}

// ProspectHandler serves /prospects.
type ProspectHandler struct {
	svc prospectService
	log *slog.Logger
}

func NewProspectHandler(svc prospectService, logger *slog.Logger) *ProspectHandler {
	return &ProspectHandler{svc: svc, log: logger.With("handler", "prospect")}
}

type prospectRequest struct {
	FullName    *string                `json:"fullName"`
	Email       *string                `json:"email"`
	Phone       *string                `json:"phone"`
	CompanyName *string                `json:"companyName"`
	Status      *domain.ProspectStatus `json:"status"`
	Source      *string                `json:"source"`
	Notes       *string                `json:"notes"`
}

type convertRequest struct {
	CompanyID *uuid.UUID `json:"companyId"`
	Tags      []string   `json:"tags"`
}

// List handles GET /prospects?search=&status=&limit=&offset=.
func (h *ProspectHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := domain.ProspectFilter{
		Search: q.String("search"),
		Status: queryEnum[domain.ProspectStatus](q, "status"),
	}
	filter.Limit, filter.Offset = q.Page()
	if err := q.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	prospects, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(prospects))
}

// Create handles POST /prospects.
func (h *ProspectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req prospectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Create(r.Context(), prospect.CreateInput{
		FullName:    deref(req.FullName),
		Email:       req.Email,
		Phone:       req.Phone,
		CompanyName: req.CompanyName,
		Status:      deref(req.Status),
		Source:      req.Source,
		Notes:       req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// Get handles GET /prospects/{id}.
func (h *ProspectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Update handles PATCH /prospects/{id}.
func (h *ProspectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req prospectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Update(r.Context(), id, prospect.UpdateInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		CompanyName: req.CompanyName,
		Status:      req.Status,
		Source:      req.Source,
		Notes:       req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Delete handles DELETE /prospects/{id}.
func (h *ProspectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Convert handles POST /prospects/{id}/convert. The body is optional.
func (h *ProspectHandler) Convert(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req convertRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}

	result, err := h.svc.Convert(r.Context(), id, prospect.ConvertInput{
		CompanyID: req.CompanyID,
		Tags:      req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}
