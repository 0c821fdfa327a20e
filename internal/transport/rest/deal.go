package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/deal"
)

type dealService interface {
	Create(ctx context.Context, input deal.CreateInput) (*domain.Deal, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Deal, error)
	List(ctx context.Context, filter domain.DealFilter) ([]domain.Deal, error)
	Update(ctx context.Context, id uuid.UUID, input deal.UpdateInput) (*domain.Deal, error)
	MoveStage(ctx context.Context, id uuid.UUID, stage domain.DealStage) (*domain.Deal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DealHandler serves /deals.
type DealHandler struct {
	svc dealService
	log *slog.Logger
}

func NewDealHandler(svc dealService, logger *slog.Logger) *DealHandler {
	return &DealHandler{svc: svc, log: logger.With("handler", "deal")}
}

type dealRequest struct {
	Name      *string           `json:"name"`
	CompanyID *uuid.UUID        `json:"companyId"`
	ContactID *uuid.UUID        `json:"contactId"`
	Stage     *domain.DealStage `json:"stage"`
	Amount    *int64            `json:"amount"`
	Currency  *string           `json:"currency"`
	Priority  *domain.Priority  `json:"priority"`
	CloseDate *time.Time        `json:"closeDate"`
	Tags      *[]string         `json:"tags"`
	Notes     *string           `json:"notes"`
}

type moveStageRequest struct {
	Stage domain.DealStage `json:"stage"`
}

type dealResponse struct {
	domain.Deal
	Company *companySummary `json:"company,omitempty"`
	Contact *contactSummary `json:"contact,omitempty"`
}

// List handles GET /deals?search=&stage=&companyId=&limit=&offset=.
func (h *DealHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := domain.DealFilter{
		Search:    q.String("search"),
		Stage:     queryEnum[domain.DealStage](q, "stage"),
		CompanyID: q.UUID("companyId"),
	}
	filter.Limit, filter.Offset = q.Page()
	if err := q.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	deals, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(h.withRelations(r.Context(), deals...)))
}

// Create handles POST /deals.
func (h *DealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dealRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.Create(r.Context(), deal.CreateInput{
		Name:      deref(req.Name),
		CompanyID: req.CompanyID,
		ContactID: req.ContactID,
		Stage:     deref(req.Stage),
		Amount:    deref(req.Amount),
		Currency:  deref(req.Currency),
		Priority:  deref(req.Priority),
		CloseDate: req.CloseDate,
		Tags:      deref(req.Tags),
		Notes:     req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.withRelations(r.Context(), *d)[0])
}

// Get handles GET /deals/{id}.
func (h *DealHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.withRelations(r.Context(), *d)[0])
}

// Update handles PATCH /deals/{id}.
func (h *DealHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req dealRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.Update(r.Context(), id, deal.UpdateInput{
		Name:      req.Name,
		CompanyID: req.CompanyID,
		ContactID: req.ContactID,
		Stage:     req.Stage,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Priority:  req.Priority,
		CloseDate: req.CloseDate,
		Tags:      req.Tags,
		Notes:     req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.withRelations(r.Context(), *d)[0])
}

// MoveStage handles PATCH /deals/{id}/stage.
func (h *DealHandler) MoveStage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req moveStageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.MoveStage(r.Context(), id, req.Stage)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.withRelations(r.Context(), *d)[0])
}

// Delete handles DELETE /deals/{id}.
func (h *DealHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// withRelations attaches company and contact summaries. Related records are
// fetched in one batch per kind.
func (h *DealHandler) withRelations(ctx context.Context, deals ...domain.Deal) []dealResponse {
	companyIDs := make([]*uuid.UUID, len(deals))
	contactIDs := make([]*uuid.UUID, len(deals))
	for i := range deals {
		companyIDs[i] = deals[i].CompanyID
		contactIDs[i] = deals[i].ContactID
	}
	companies := loadCompanies(ctx, h.log, collectIDs(companyIDs...))
	contacts := loadContacts(ctx, h.log, collectIDs(contactIDs...))

	out := make([]dealResponse, len(deals))
	for i, d := range deals {
		out[i] = dealResponse{
			Deal:    d,
			Company: lookup(companies, d.CompanyID),
			Contact: lookup(contacts, d.ContactID),
		}
	}
	return out
}
