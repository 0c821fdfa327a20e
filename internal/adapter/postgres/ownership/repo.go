// Package ownership answers whether a CRM record belongs to a user.
package ownership

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

var tables = map[domain.EntityType]string{
	domain.EntityTypeCompany:  "companies",
	domain.EntityTypeCustomer: "customers",
	domain.EntityTypeProspect: "prospects",
	domain.EntityTypeDeal:     "deals",
	domain.EntityTypeTodo:     "todos",
}

// Repo checks record ownership across the owner-scoped tables.
type Repo struct {
	db postgres.Querier
}

// New creates a new ownership repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Exists reports whether the entity with id exists and is owned by ownerID.
func (r *Repo) Exists(ctx context.Context, ownerID uuid.UUID, entity domain.EntityType, id uuid.UUID) (bool, error) {
	table, ok := tables[entity]
	if !ok {
		return false, fmt.Errorf("ownership: unsupported entity %q", entity)
	}

	sub := postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID})

	query := postgres.Builder().
		Select().
		Column(squirrel.Alias(squirrel.Expr("EXISTS(?)", sub), "found"))

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var found bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&found); err != nil {
		return false, postgres.MapError(err, table, id)
	}
	return found, nil
}
