// Package activitylog implements the activity log store using PostgreSQL.
// It provides append-only operations for activity entries.
package activitylog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

const table = "activity_logs"

var columns = []string{
	"id", "entity_type", "entity_id", "action", "changed_fields",
	"previous_values", "new_values", "metadata", "performed_by_id", "created_at",
}

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts a new entry. It satisfies activity.Store. Inside a
// transaction the insert runs in a savepoint.
func (r *Repo) Append(ctx context.Context, entry domain.ActivityLogEntry) error {
	prev, err := marshalJSON(entry.PreviousValues)
	if err != nil {
		return fmt.Errorf("activity_log marshal previous values: %w", err)
	}
	next, err := marshalJSON(entry.NewValues)
	if err != nil {
		return fmt.Errorf("activity_log marshal new values: %w", err)
	}
	meta, err := marshalJSON(entry.Metadata)
	if err != nil {
		return fmt.Errorf("activity_log marshal metadata: %w", err)
	}

	changed := entry.ChangedFields
	if changed == nil {
		changed = []string{}
	}

	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			entry.ID, string(entry.EntityType), entry.EntityID, string(entry.Action), changed,
			prev, next, meta, entry.PerformedByID, entry.CreatedAt,
		)

	// A failed audit insert must not poison a caller's transaction.
	err = postgres.InSavepoint(ctx, r.db, func(q postgres.Querier) error {
		_, err := postgres.Exec(ctx, q, query)
		return err
	})
	if err != nil {
		return postgres.MapError(err, "activity_log", entry.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns entries matching filter ordered by created_at DESC.
func (r *Repo) List(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityLogEntry, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC")

	if filter.EntityType != nil {
		query = query.Where(squirrel.Eq{"entity_type": string(*filter.EntityType)})
	}
	if filter.EntityID != nil {
		query = query.Where(squirrel.Eq{"entity_id": *filter.EntityID})
	}
	if filter.PerformedByID != nil {
		query = query.Where(squirrel.Eq{"performed_by_id": *filter.PerformedByID})
	}
	query = postgres.Paginate(query, filter.Limit, filter.Offset)

	rows, err := postgres.SelectAll[row](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, fmt.Errorf("list activity_logs: %w", err)
	}

	entries := make([]domain.ActivityLogEntry, len(rows))
	for i, rw := range rows {
		e, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}
	return entries, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type row struct {
	ID             uuid.UUID `db:"id"`
	EntityType     string    `db:"entity_type"`
	EntityID       string    `db:"entity_id"`
	Action         string    `db:"action"`
	ChangedFields  []string  `db:"changed_fields"`
	PreviousValues []byte    `db:"previous_values"`
	NewValues      []byte    `db:"new_values"`
	Metadata       []byte    `db:"metadata"`
	PerformedByID  uuid.UUID `db:"performed_by_id"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r row) toDomain() (domain.ActivityLogEntry, error) {
	e := domain.ActivityLogEntry{
		ID:            r.ID,
		EntityType:    domain.EntityType(r.EntityType),
		EntityID:      r.EntityID,
		Action:        domain.AuditAction(r.Action),
		ChangedFields: r.ChangedFields,
		PerformedByID: r.PerformedByID,
		CreatedAt:     r.CreatedAt,
	}
	if e.ChangedFields == nil {
		e.ChangedFields = []string{}
	}

	if err := unmarshalJSON(r.PreviousValues, &e.PreviousValues); err != nil {
		return domain.ActivityLogEntry{}, fmt.Errorf("activity_log %s unmarshal previous values: %w", r.ID, err)
	}
	if err := unmarshalJSON(r.NewValues, &e.NewValues); err != nil {
		return domain.ActivityLogEntry{}, fmt.Errorf("activity_log %s unmarshal new values: %w", r.ID, err)
	}
	if err := unmarshalJSON(r.Metadata, &e.Metadata); err != nil {
		return domain.ActivityLogEntry{}, fmt.Errorf("activity_log %s unmarshal metadata: %w", r.ID, err)
	}
	return e, nil
}

// marshalJSON encodes v for a JSONB column; nil maps become SQL NULL.
func marshalJSON[M ~map[string]any](v M) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func unmarshalJSON[M ~map[string]any](data []byte, dst *M) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, dst)
}
