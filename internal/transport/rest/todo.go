package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/todo"
)

type todoService interface {
	Create(ctx context.Context, input todo.CreateInput) (*domain.Todo, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Todo, error)
	List(ctx context.Context, filter domain.TodoFilter) ([]domain.Todo, error)
	Update(ctx context.Context, id uuid.UUID, input todo.UpdateInput) (*domain.Todo, error)
	BulkUpdateStatus(ctx context.Context, input todo.BulkStatusInput) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TodoHandler serves /todos.
type TodoHandler struct {
	svc todoService
	log *slog.Logger
}

func NewTodoHandler(svc todoService, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, log: logger.With("handler", "todo")}
}

type todoRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Status      *domain.TodoStatus `json:"status"`
	Priority    *domain.Priority   `json:"priority"`
	DueDate     *time.Time         `json:"dueDate"`
	DealID      *uuid.UUID         `json:"dealId"`
	CustomerID  *uuid.UUID         `json:"customerId"`
	ProspectID  *uuid.UUID         `json:"prospectId"`
	AssignedTo  *uuid.UUID         `json:"assignedTo"`
}

type bulkStatusRequest struct {
	IDs    []uuid.UUID       `json:"ids"`
	Status domain.TodoStatus `json:"status"`
}

type bulkStatusResponse struct {
	Updated int64 `json:"updated"`
}

// List handles GET /todos?status=&dealId=&customerId=&overdue=&limit=&offset=.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := domain.TodoFilter{
		Status:     queryEnum[domain.TodoStatus](q, "status"),
		DealID:     q.UUID("dealId"),
		CustomerID: q.UUID("customerId"),
		Overdue:    q.Bool("overdue"),
	}
	filter.Limit, filter.Offset = q.Page()
	if err := q.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	todos, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(todos))
}

// Create handles POST /todos.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req todoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	td, err := h.svc.Create(r.Context(), todo.CreateInput{
		Title:       deref(req.Title),
		Description: req.Description,
		Status:      deref(req.Status),
		Priority:    deref(req.Priority),
		DueDate:     req.DueDate,
		DealID:      req.DealID,
		CustomerID:  req.CustomerID,
		ProspectID:  req.ProspectID,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, td)
}

// Get handles GET /todos/{id}.
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	td, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, td)
}

// Update handles PATCH /todos/{id}. Links to deals, customers and prospects
// are fixed at creation.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req todoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.DealID != nil || req.CustomerID != nil || req.ProspectID != nil {
		handleError(h.log, w, r, domain.NewGenericValidationError("todo links cannot be changed"))
		return
	}

	td, err := h.svc.Update(r.Context(), id, todo.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, td)
}

// BulkStatus handles POST /todos/bulk-status.
func (h *TodoHandler) BulkStatus(w http.ResponseWriter, r *http.Request) {
	var req bulkStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.BulkUpdateStatus(r.Context(), todo.BulkStatusInput{IDs: req.IDs, Status: req.Status})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bulkStatusResponse{Updated: n})
}

// Delete handles DELETE /todos/{id}.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
