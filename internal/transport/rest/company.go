package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/company"
)

type companyService interface {
	Create(ctx context.Context, input company.CreateInput) (*domain.Company, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	List(ctx context.Context, filter domain.CompanyFilter) ([]domain.Company, error)
	Update(ctx context.Context, id uuid.UUID, input company.UpdateInput) (*domain.Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CompanyHandler serves /companies.
type CompanyHandler struct {
	svc companyService
	log *slog.Logger
}

func NewCompanyHandler(svc companyService, logger *slog.Logger) *CompanyHandler {
	return &CompanyHandler{svc: svc, log: logger.With("handler", "company")}
}

type companyRequest struct {
	Name     *string               `json:"name"`
	Industry *string               `json:"industry"`
	Website  *string               `json:"website"`
	Email    *string               `json:"email"`
	Phone    *string               `json:"phone"`
	Address  *string               `json:"address"`
	Status   *domain.CompanyStatus `json:"status"`
	Notes    *string               `json:"notes"`
}

// List handles GET /companies?search=&status=&limit=&offset=.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := domain.CompanyFilter{
		Search: q.String("search"),
		Status: queryEnum[domain.CompanyStatus](q, "status"),
	}
	filter.Limit, filter.Offset = q.Page()
	if err := q.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	companies, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(companies))
}

// Create handles POST /companies.
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Create(r.Context(), company.CreateInput{
		Name:     deref(req.Name),
		Industry: req.Industry,
		Website:  req.Website,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Status:   deref(req.Status),
		Notes:    req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Get handles GET /companies/{id}.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Update handles PATCH /companies/{id}.
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req companyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Update(r.Context(), id, company.UpdateInput{
		Name:     req.Name,
		Industry: req.Industry,
		Website:  req.Website,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Status:   req.Status,
		Notes:    req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Delete handles DELETE /companies/{id}.
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
