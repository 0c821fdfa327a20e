// Package company implements the Company repository using PostgreSQL.
package company

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

const table = "companies"

var columns = []string{
	"id", "owner_id", "name", "industry", "website", "email", "phone",
	"address", "status", "notes", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides company persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new company repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts c and returns the stored row.
func (r *Repo) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	query := postgres.Builder().
		Insert(table).
		Columns("id", "owner_id", "name", "industry", "website", "email", "phone", "address", "status", "notes").
		Values(c.ID, c.OwnerID, c.Name, c.Industry, c.Website, c.Email, c.Phone, c.Address, string(c.Status), c.Notes).
		Suffix(returning)

	got, err := postgres.GetOne[domain.Company](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "company", c.ID)
	}
	return got, nil
}

// GetByID returns a company owned by ownerID.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Company, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID})

	got, err := postgres.GetOne[domain.Company](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "company", id)
	}
	return got, nil
}

// GetByIDs returns the companies among ids owned by ownerID, in no particular order.
// Missing ids are skipped. Used by the per-request company loader.
func (r *Repo) GetByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]domain.Company, error) {
	if len(ids) == 0 {
		return []domain.Company{}, nil
	}

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where("id = ANY(?)", ids)

	got, err := postgres.SelectAll[domain.Company](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "companies", nil)
	}
	return got, nil
}

// Update applies the non-nil fields of params and returns the updated row.
func (r *Repo) Update(ctx context.Context, ownerID, id uuid.UUID, params domain.CompanyUpdateParams) (*domain.Company, error) {
	query := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		Suffix(returning)

	if params.Name != nil {
		query = query.Set("name", *params.Name)
	}
	if params.Industry != nil {
		query = query.Set("industry", postgres.NullString(*params.Industry))
	}
	if params.Website != nil {
		query = query.Set("website", postgres.NullString(*params.Website))
	}
	if params.Email != nil {
		query = query.Set("email", postgres.NullString(*params.Email))
	}
	if params.Phone != nil {
		query = query.Set("phone", postgres.NullString(*params.Phone))
	}
	if params.Address != nil {
		query = query.Set("address", postgres.NullString(*params.Address))
	}
	if params.Status != nil {
		query = query.Set("status", string(*params.Status))
	}
	if params.Notes != nil {
		query = query.Set("notes", postgres.NullString(*params.Notes))
	}

	got, err := postgres.GetOne[domain.Company](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "company", id)
	}
	return got, nil
}

// Delete removes a company owned by ownerID.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return postgres.MapError(err, "company", id)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, "company", id)
	}
	return nil
}

// List returns companies owned by ownerID, newest first.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, filter domain.CompanyFilter) ([]domain.Company, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC")

	if filter.Search != nil && *filter.Search != "" {
		query = query.Where(postgres.ILike(*filter.Search, "name", "industry", "email"))
	}
	if filter.Status != nil {
		query = query.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	query = postgres.Paginate(query, filter.Limit, filter.Offset)

	got, err := postgres.SelectAll[domain.Company](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "companies", nil)
	}
	return got, nil
}
