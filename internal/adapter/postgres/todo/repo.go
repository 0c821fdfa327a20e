// Package todo implements the Todo repository using PostgreSQL.
package todo

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

const table = "todos"

var columns = []string{
	"id", "owner_id", "title", "description", "status", "priority", "due_date",
	"deal_id", "customer_id", "prospect_id", "assigned_to", "completed_at",
	"created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

var openStatuses = []string{string(domain.TodoStatusTodo), string(domain.TodoStatusInProgress)}

// Repo provides todo persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	now func() time.Time
}

// New creates a new todo repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, now: time.Now}
}

// Create inserts td and returns the stored row.
func (r *Repo) Create(ctx context.Context, td *domain.Todo) (*domain.Todo, error) {
	query := postgres.Builder().
		Insert(table).
		Columns("id", "owner_id", "title", "description", "status", "priority", "due_date",
			"deal_id", "customer_id", "prospect_id", "assigned_to", "completed_at").
		Values(td.ID, td.OwnerID, td.Title, td.Description, string(td.Status), string(td.Priority), td.DueDate,
			td.DealID, td.CustomerID, td.ProspectID, td.AssignedTo, td.CompletedAt).
		Suffix(returning)

	got, err := postgres.GetOne[domain.Todo](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "todo", td.ID)
	}
	return got, nil
}

// GetByID returns a todo owned by ownerID.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Todo, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID})

	got, err := postgres.GetOne[domain.Todo](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "todo", id)
	}
	return got, nil
}

// Update applies the non-nil fields of params and returns the updated row.
// Moving to DONE stamps completed_at; any other status clears it.
func (r *Repo) Update(ctx context.Context, ownerID, id uuid.UUID, params domain.TodoUpdateParams) (*domain.Todo, error) {
	query := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		Suffix(returning)

	if params.Title != nil {
		query = query.Set("title", *params.Title)
	}
	if params.Description != nil {
		query = query.Set("description", postgres.NullString(*params.Description))
	}
	if params.Status != nil {
		query = query.Set("status", string(*params.Status))
		query = setCompletedAt(query, *params.Status)
	}
	if params.Priority != nil {
		query = query.Set("priority", string(*params.Priority))
	}
	if params.DueDate != nil {
		query = query.Set("due_date", *params.DueDate)
	}
	if params.AssignedTo != nil {
		query = query.Set("assigned_to", *params.AssignedTo)
	}

	got, err := postgres.GetOne[domain.Todo](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "todo", id)
	}
	return got, nil
}

// BulkUpdateStatus sets status on every listed todo owned by ownerID and
// returns the number of rows changed. Unknown or foreign ids are ignored.
func (r *Repo) BulkUpdateStatus(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID, status domain.TodoStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where("id = ANY(?)", ids)
	query = setCompletedAt(query, status)

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return 0, postgres.MapError(err, "todos", nil)
	}
	return n, nil
}

// Delete removes a todo owned by ownerID.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return postgres.MapError(err, "todo", id)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, "todo", id)
	}
	return nil
}

// List returns todos owned by ownerID ordered by due date, undated last.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, filter domain.TodoFilter) ([]domain.Todo, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("due_date ASC NULLS LAST", "created_at DESC")

	if filter.Status != nil {
		query = query.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.DealID != nil {
		query = query.Where(squirrel.Eq{"deal_id": *filter.DealID})
	}
	if filter.CustomerID != nil {
		query = query.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Overdue {
		query = query.Where(squirrel.Eq{"status": openStatuses}).
			Where(squirrel.Lt{"due_date": r.now().UTC()})
	}
	query = postgres.Paginate(query, filter.Limit, filter.Offset)

	got, err := postgres.SelectAll[domain.Todo](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "todos", nil)
	}
	return got, nil
}

func setCompletedAt(query squirrel.UpdateBuilder, status domain.TodoStatus) squirrel.UpdateBuilder {
	if status == domain.TodoStatusDone {
		return query.Set("completed_at", squirrel.Expr("COALESCE(completed_at, now())"))
	}
	return query.Set("completed_at", nil)
}
