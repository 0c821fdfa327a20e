// Package customer implements the Customer repository using PostgreSQL.
package customer

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

const table = "customers"

var columns = []string{
	"id", "owner_id", "full_name", "email", "phone", "company_id",
	"status", "tags", "notes", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides customer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new customer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts c and returns the stored row.
func (r *Repo) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}

	query := postgres.Builder().
		Insert(table).
		Columns("id", "owner_id", "full_name", "email", "phone", "company_id", "status", "tags", "notes").
		Values(c.ID, c.OwnerID, c.FullName, c.Email, c.Phone, c.CompanyID, string(c.Status), tags, c.Notes).
		Suffix(returning)

	got, err := postgres.GetOne[domain.Customer](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "customer", c.ID)
	}
	return got, nil
}

// GetByID returns a customer owned by ownerID.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Customer, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID})

	got, err := postgres.GetOne[domain.Customer](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "customer", id)
	}
	return got, nil
}

// GetByIDs returns the customers among ids owned by ownerID. Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]domain.Customer, error) {
	if len(ids) == 0 {
		return []domain.Customer{}, nil
	}

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where("id = ANY(?)", ids)

	got, err := postgres.SelectAll[domain.Customer](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "customers", nil)
	}
	return got, nil
}

// Update applies the non-nil fields of params and returns the updated row.
func (r *Repo) Update(ctx context.Context, ownerID, id uuid.UUID, params domain.CustomerUpdateParams) (*domain.Customer, error) {
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
	switch {
	case params.ClearCompany:
		query = query.Set("company_id", nil)
	case params.CompanyID != nil:
		query = query.Set("company_id", *params.CompanyID)
	}
	if params.Status != nil {
		query = query.Set("status", string(*params.Status))
	}
	if params.Tags != nil {
		query = query.Set("tags", *params.Tags)
	}
	if params.Notes != nil {
		query = query.Set("notes", postgres.NullString(*params.Notes))
	}

	got, err := postgres.GetOne[domain.Customer](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "customer", id)
	}
	return got, nil
}

// Delete removes a customer owned by ownerID.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return postgres.MapError(err, "customer", id)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, "customer", id)
	}
	return nil
}

// List returns customers owned by ownerID, newest first.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, filter domain.CustomerFilter) ([]domain.Customer, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC")

	if filter.Search != nil && *filter.Search != "" {
		query = query.Where(postgres.ILike(*filter.Search, "full_name", "email", "phone"))
	}
	if filter.Status != nil {
		query = query.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.CompanyID != nil {
		query = query.Where(squirrel.Eq{"company_id": *filter.CompanyID})
	}
	query = postgres.Paginate(query, filter.Limit, filter.Offset)

	got, err := postgres.SelectAll[domain.Customer](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "customers", nil)
	}
	return got, nil
}
