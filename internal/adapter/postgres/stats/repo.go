// Package stats implements the dashboard aggregate queries using PostgreSQL.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

// closedAt is when a deal left the pipeline; the close date wins when set.
const closedAt = "COALESCE(close_date, updated_at)"

// Repo runs read-only aggregate queries. Methods are safe to call concurrently
// as long as the context carries no transaction.
type Repo struct {
	db postgres.Querier
}

// New creates a new stats repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// DealCounts aggregates deals created, won and lost within p.
func (r *Repo) DealCounts(ctx context.Context, ownerID uuid.UUID, p domain.Period) (domain.DealCounts, error) {
	closedIn := closedAt + " >= ? AND " + closedAt + " < ?"

	query := postgres.Builder().
		Select().
		Column(squirrel.Expr("count(*) FILTER (WHERE created_at >= ? AND created_at < ?) AS created", p.From, p.To)).
		Column(squirrel.Expr("count(*) FILTER (WHERE stage = 'WON' AND "+closedIn+") AS won", p.From, p.To)).
		Column(squirrel.Expr("count(*) FILTER (WHERE stage = 'LOST' AND "+closedIn+") AS lost", p.From, p.To)).
		Column(squirrel.Expr("COALESCE(sum(amount) FILTER (WHERE stage = 'WON' AND "+closedIn+"), 0)::bigint AS won_amount", p.From, p.To)).
		From("deals").
		Where(squirrel.Eq{"owner_id": ownerID})

	out, err := postgres.GetOne[domain.DealCounts](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return domain.DealCounts{}, postgres.MapError(err, "deal counts", nil)
	}
	return *out, nil
}

// PipelineAmount sums the amount of every open deal.
func (r *Repo) PipelineAmount(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	query := postgres.Builder().
		Select("COALESCE(sum(amount), 0)::bigint").
		From("deals").
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where(squirrel.NotEq{"stage": []string{string(domain.DealStageWon), string(domain.DealStageLost)}})

	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return 0, postgres.MapError(err, "pipeline amount", nil)
	}
	return n, nil
}

// CountCreated counts rows of table created within p. table must be one of
// customers, prospects or deals.
func (r *Repo) CountCreated(ctx context.Context, table string, ownerID uuid.UUID, p domain.Period) (int64, error) {
	switch table {
	case "customers", "prospects", "deals":
	default:
		return 0, fmt.Errorf("count created: unsupported table %q", table)
	}

	query := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where(squirrel.GtOrEq{"created_at": p.From}).
		Where(squirrel.Lt{"created_at": p.To})

	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return 0, postgres.MapError(err, table+" count", nil)
	}
	return n, nil
}

// TodosCompleted counts todos completed within p.
func (r *Repo) TodosCompleted(ctx context.Context, ownerID uuid.UUID, p domain.Period) (int64, error) {
	query := postgres.Builder().
		Select("count(*)").
		From("todos").
		Where(squirrel.Eq{"owner_id": ownerID, "status": string(domain.TodoStatusDone)}).
		Where(squirrel.GtOrEq{"completed_at": p.From}).
		Where(squirrel.Lt{"completed_at": p.To})

	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return 0, postgres.MapError(err, "todos completed", nil)
	}
	return n, nil
}

// OverdueTodos counts open todos whose due date is before now.
func (r *Repo) OverdueTodos(ctx context.Context, ownerID uuid.UUID, now time.Time) (int64, error) {
	query := postgres.Builder().
		Select("count(*)").
		From("todos").
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where(squirrel.Eq{"status": []string{string(domain.TodoStatusTodo), string(domain.TodoStatusInProgress)}}).
		Where(squirrel.Lt{"due_date": now})

	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return 0, postgres.MapError(err, "overdue todos", nil)
	}
	return n, nil
}
