// Package deal implements the Deal repository using PostgreSQL.
package deal

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

const table = "deals"

var columns = []string{
	"id", "owner_id", "name", "company_id", "contact_id", "stage", "amount",
	"currency", "priority", "close_date", "tags", "notes", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides deal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new deal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts d and returns the stored row.
func (r *Repo) Create(ctx context.Context, d *domain.Deal) (*domain.Deal, error) {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}

	query := postgres.Builder().
		Insert(table).
		Columns("id", "owner_id", "name", "company_id", "contact_id", "stage", "amount",
			"currency", "priority", "close_date", "tags", "notes").
		Values(d.ID, d.OwnerID, d.Name, d.CompanyID, d.ContactID, string(d.Stage), d.Amount,
			d.Currency, string(d.Priority), d.CloseDate, tags, d.Notes).
		Suffix(returning)

	got, err := postgres.GetOne[domain.Deal](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "deal", d.ID)
	}
	return got, nil
}

// GetByID returns a deal owned by ownerID.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Deal, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID})

	got, err := postgres.GetOne[domain.Deal](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "deal", id)
	}
	return got, nil
}

// Update applies the non-nil fields of params and returns the updated row.
func (r *Repo) Update(ctx context.Context, ownerID, id uuid.UUID, params domain.DealUpdateParams) (*domain.Deal, error) {
	query := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		Suffix(returning)

	if params.Name != nil {
		query = query.Set("name", *params.Name)
	}
	if params.CompanyID != nil {
		query = query.Set("company_id", *params.CompanyID)
	}
	if params.ContactID != nil {
		query = query.Set("contact_id", *params.ContactID)
	}
	if params.Stage != nil {
		query = query.Set("stage", string(*params.Stage))
	}
	if params.Amount != nil {
		query = query.Set("amount", *params.Amount)
	}
	if params.Currency != nil {
		query = query.Set("currency", *params.Currency)
	}
	if params.Priority != nil {
		query = query.Set("priority", string(*params.Priority))
	}
	if params.CloseDate != nil {
		query = query.Set("close_date", *params.CloseDate)
	}
	if params.Tags != nil {
		query = query.Set("tags", *params.Tags)
	}
	if params.Notes != nil {
		query = query.Set("notes", postgres.NullString(*params.Notes))
	}

	got, err := postgres.GetOne[domain.Deal](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "deal", id)
	}
	return got, nil
}

// Delete removes a deal owned by ownerID.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return postgres.MapError(err, "deal", id)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, "deal", id)
	}
	return nil
}

// List returns deals owned by ownerID, newest first.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, filter domain.DealFilter) ([]domain.Deal, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC")

	if filter.Search != nil && *filter.Search != "" {
		query = query.Where(postgres.ILike(*filter.Search, "name", "notes"))
	}
	if filter.Stage != nil {
		query = query.Where(squirrel.Eq{"stage": string(*filter.Stage)})
	}
	if filter.CompanyID != nil {
		query = query.Where(squirrel.Eq{"company_id": *filter.CompanyID})
	}
	query = postgres.Paginate(query, filter.Limit, filter.Offset)

	got, err := postgres.SelectAll[domain.Deal](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "deals", nil)
	}
	return got, nil
}
