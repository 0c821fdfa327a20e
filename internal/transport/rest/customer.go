package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/customer"
)

type customerService interface {
	Create(ctx context.Context, input customer.CreateInput) (*domain.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, filter domain.CustomerFilter) ([]domain.Customer, error)
	Update(ctx context.Context, id uuid.UUID, input customer.UpdateInput) (*domain.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CustomerHandler serves /customers.
type CustomerHandler struct {
	svc customerService
	log *slog.Logger
}

func NewCustomerHandler(svc customerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{svc: svc, log: logger.With("handler", "customer")}
}

type customerRequest struct {
	FullName     *string                `json:"fullName"`
	Email        *string                `json:"email"`
	Phone        *string                `json:"phone"`
	CompanyID    *uuid.UUID             `json:"companyId"`
	ClearCompany bool                   `json:"clearCompany"`
	Status       *domain.CustomerStatus `json:"status"`
	Tags         *[]string              `json:"tags"`
	Notes        *string                `json:"notes"`
}

type customerResponse struct {
	domain.Customer
	Company *companySummary `json:"company,omitempty"`
}

// List handles GET /customers?search=&status=&companyId=&limit=&offset=.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := domain.CustomerFilter{
		Search:    q.String("search"),
		Status:    queryEnum[domain.CustomerStatus](q, "status"),
		CompanyID: q.UUID("companyId"),
	}
	filter.Limit, filter.Offset = q.Page()
	if err := q.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	customers, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ids := make([]*uuid.UUID, len(customers))
	for i := range customers {
		ids[i] = customers[i].CompanyID
	}
	companies := loadCompanies(r.Context(), h.log, collectIDs(ids...))

	out := make([]customerResponse, len(customers))
	for i, c := range customers {
		out[i] = customerResponse{Customer: c, Company: lookup(companies, c.CompanyID)}
	}
	writeJSON(w, http.StatusOK, newListResponse(out))
}

// Create handles POST /customers.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Create(r.Context(), customer.CreateInput{
		FullName:  deref(req.FullName),
		Email:     req.Email,
		Phone:     req.Phone,
		CompanyID: req.CompanyID,
		Status:    deref(req.Status),
		Tags:      deref(req.Tags),
		Notes:     req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.withCompany(r.Context(), c))
}

// Get handles GET /customers/{id}.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, h.withCompany(r.Context(), c))
}

// Update handles PATCH /customers/{id}. Setting clearCompany detaches the
// customer from its company.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req customerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Update(r.Context(), id, customer.UpdateInput{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		CompanyID:    req.CompanyID,
		ClearCompany: req.ClearCompany,
		Status:       req.Status,
		Tags:         req.Tags,
		Notes:        req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.withCompany(r.Context(), c))
}

// Delete handles DELETE /customers/{id}.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func (h *CustomerHandler) withCompany(ctx context.Context, c *domain.Customer) customerResponse {
	companies := loadCompanies(ctx, h.log, collectIDs(c.CompanyID))
	return customerResponse{Customer: *c, Company: lookup(companies, c.CompanyID)}
}
