// Package prospect implements the Prospect repository using PostgreSQL.
package prospect

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

const table = "prospects"

var columns = []string{
	"id", "owner_id", "full_name", "email", "phone", "company_name",
	"status", "source", "notes", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides prospect persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new prospect repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts p and returns the stored row.
func (r *Repo) Create(ctx context.Context, p *domain.Prospect) (*domain.Prospect, error) {
	query := postgres.Builder().
		Insert(table).
		Columns("id", "owner_id", "full_name", "email", "phone", "company_name", "status", "source", "notes").
		Values(p.ID, p.OwnerID, p.FullName, p.Email, p.Phone, p.CompanyName, string(p.Status), p.Source, p.Notes).
		Suffix(returning)

	got, err := postgres.GetOne[domain.Prospect](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "prospect", p.ID)
	}
	return got, nil
}

// GetByID returns a prospect owned by ownerID.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Prospect, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID})

	got, err := postgres.GetOne[domain.Prospect](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "prospect", id)
	}
	return got, nil
}

// Update applies the non-nil fields of params and returns the updated row.
func (r *Repo) Update(ctx context.Context, ownerID, id uuid.UUID, params domain.ProspectUpdateParams) (*domain.Prospect, error) {
	query := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		Suffix(returning)

	if params.FullName != nil {
		query = query.Set("full_name", *params.FullName)
	}
	if params.Email != nil {
		query = query.Set("email", postgres.NullString(*params.Email))
	}
	if params.Phone != nil {
		query = query.Set("phone", postgres.NullString(*params.Phone))
	}
	if params.CompanyName != nil {
		query = query.Set("company_name", postgres.NullString(*params.CompanyName))
	}
	if params.Status != nil {
		query = query.Set("status", string(*params.Status))
	}
	if params.Source != nil {
		query = query.Set("source", postgres.NullString(*params.Source))
	}
	if params.Notes != nil {
		query = query.Set("notes", postgres.NullString(*params.Notes))
	}

	got, err := postgres.GetOne[domain.Prospect](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "prospect", id)
	}
	return got, nil
}

// Delete removes a prospect owned by ownerID.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return postgres.MapError(err, "prospect", id)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, "prospect", id)
	}
	return nil
}

// List returns prospects owned by ownerID, newest first.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, filter domain.ProspectFilter) ([]domain.Prospect, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC")

	if filter.Search != nil && *filter.Search != "" {
		query = query.Where(postgres.ILike(*filter.Search, "full_name", "email", "company_name"))
	}
	if filter.Status != nil {
		query = query.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	query = postgres.Paginate(query, filter.Limit, filter.Offset)

	got, err := postgres.SelectAll[domain.Prospect](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "prospects", nil)
	}
	return got, nil
}
