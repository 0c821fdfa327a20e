// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "name", "password_hash", "created_at", "updated_at"}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts u. A duplicate email maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := postgres.Builder().
		Insert(table).
		Columns("id", "email", "name", "password_hash").
		Values(u.ID, u.Email, u.Name, u.PasswordHash).
		Suffix(returning)

	got, err := postgres.GetOne[domain.User](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return got, nil
}

// GetByID returns a user by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	got, err := postgres.GetOne[domain.User](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return got, nil
}

// GetByEmail returns a user by normalized email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"email": email})

	got, err := postgres.GetOne[domain.User](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "user email", nil)
	}
	return got, nil
}

// UpdateName changes the display name and returns the updated row.
func (r *Repo) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error) {
	query := postgres.Builder().
		Update(table).
		Set("name", name).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)

	got, err := postgres.GetOne[domain.User](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return got, nil
}
