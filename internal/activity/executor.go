package activity

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"reflect"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

// Mutation describes one audited create, update or delete.
type Mutation[T any] struct {
	EntityType domain.EntityType
	// EntityID identifies the affected entity. It may be empty for creates;
	// the ID is then taken from the operation result.
	EntityID string
	Action   domain.AuditAction
	// UserID is the acting user. Required.
	UserID uuid.UUID

	// Operation performs the mutation. Required.
	Operation func(ctx context.Context) (T, error)
	// Previous loads the state before Operation runs. Omit for creates.
	// A nil snapshot means the entity had no prior state.
	Previous func(ctx context.Context) (domain.Snapshot, error)
	// Current captures the state after a successful Operation. Omit for deletes.
	Current func(ctx context.Context, result T) (domain.Snapshot, error)
	// ResultID extracts the entity ID from the result when EntityID is empty.
	// If nil, results implementing domain.Identifier are used.
	ResultID func(result T) string

	// Metadata holds caller attributes copied into the entry.
	Metadata map[string]any
}

func (m Mutation[T]) validate() error {
	switch {
	case m.Operation == nil:
		return fmt.Errorf("%w: operation is required", ErrInvalidMutation)
	case !m.Action.IsValid():
		return fmt.Errorf("%w: action %q", ErrInvalidMutation, m.Action)
	case !m.EntityType.IsValid():
		return fmt.Errorf("%w: entity type %q", ErrInvalidMutation, m.EntityType)
	case m.UserID == uuid.Nil:
		return fmt.Errorf("%w: user id is required", ErrInvalidMutation)
	}
	return nil
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Executor runs mutations and records one activity entry per attempt.
// It holds no per-call state and is safe for concurrent use.
type Executor struct {
	rec       *Recorder
	log       *slog.Logger
	tx        txManager
	detachCtx func(context.Context) context.Context
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// Transactional makes the executor run the previous-state load, the operation
// and the success entry inside one transaction.
//
// This overrides the default contract that activity log failures never reach
// the caller: with Transactional, a failing success-entry write rolls the
// mutation back and its error is returned from Run. Failure entries for a
// rejected operation are still best effort.
func Transactional(tx txManager) ExecutorOption {
	return func(e *Executor) { e.tx = tx }
}

// WithFailureContext sets a function applied to the context before failure
// entries are written. The postgres adapter uses it to escape an aborted
// transaction so the failure entry survives the rollback.
func WithFailureContext(fn func(context.Context) context.Context) ExecutorOption {
	return func(e *Executor) { e.detachCtx = fn }
}

// NewExecutor creates an Executor writing entries through rec.
func NewExecutor(log *slog.Logger, rec *Recorder, opts ...ExecutorOption) *Executor {
	e := &Executor{
		rec:       rec,
		log:       log.With("component", "activity_executor"),
		detachCtx: func(ctx context.Context) context.Context { return ctx },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes m and records its outcome.
//
//   - Previous fails: returns *PreconditionError, Operation is not called, nothing is logged.
//   - Operation fails: a failure entry with the intended action is logged and
//     the operation error is returned unchanged.
//   - Current fails: the result is returned with a nil error; the entry has no
//     new values and the extraction error goes to the operational log.
//
// Entry write failures never reach the caller unless the executor is
// transactional.
func Run[T any](ctx context.Context, e *Executor, m Mutation[T]) (T, error) {
	var zero T
	if err := m.validate(); err != nil {
		return zero, err
	}

	if e.tx != nil {
		return runInTx(ctx, e, m)
	}

	prev, err := loadPrevious(ctx, m)
	if err != nil {
		return zero, err
	}

	result, opErr := m.Operation(ctx)
	if opErr != nil {
		e.rec.Record(e.detachCtx(ctx), failureEntry(m, prev, opErr))
		return zero, opErr
	}

	e.rec.Record(ctx, successEntry(ctx, e, m, prev, result))
	return result, nil
}

func runInTx[T any](ctx context.Context, e *Executor, m Mutation[T]) (T, error) {
	var (
		zero   T
		result T
		prev   domain.Snapshot
		opErr  error
	)

	err := e.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		prev, err = loadPrevious(txCtx, m)
		if err != nil {
			return err
		}

		result, opErr = m.Operation(txCtx)
		if opErr != nil {
			return opErr
		}

		return e.rec.Append(txCtx, successEntry(txCtx, e, m, prev, result))
	})

	if opErr != nil {
		// The transaction is gone; the failure entry is written on its own.
		e.rec.Record(e.detachCtx(ctx), failureEntry(m, prev, opErr))
		return zero, opErr
	}
	if err != nil {
		return zero, err
	}
	return result, nil
}

func loadPrevious[T any](ctx context.Context, m Mutation[T]) (domain.Snapshot, error) {
	if m.Previous == nil {
		return nil, nil
	}
	prev, err := m.Previous(ctx)
	if err != nil {
		return nil, &PreconditionError{EntityType: m.EntityType, EntityID: m.EntityID, Err: err}
	}
	return prev, nil
}

func failureEntry[T any](m Mutation[T], prev domain.Snapshot, opErr error) domain.ActivityLogEntry {
	meta := cloneMetadata(m.Metadata)
	meta[domain.MetadataError] = opErr.Error()
	meta[domain.MetadataFailed] = true

	return domain.ActivityLogEntry{
		EntityType:     m.EntityType,
		EntityID:       m.EntityID,
		Action:         m.Action,
		ChangedFields:  []string{},
		PreviousValues: prev,
		NewValues:      nil,
		Metadata:       meta,
		PerformedByID:  m.UserID,
	}
}

func successEntry[T any](ctx context.Context, e *Executor, m Mutation[T], prev domain.Snapshot, result T) domain.ActivityLogEntry {
	entry := domain.ActivityLogEntry{
		EntityType:     m.EntityType,
		EntityID:       resolveEntityID(m, result),
		Action:         m.Action,
		PreviousValues: prev,
		PerformedByID:  m.UserID,
	}
	if len(m.Metadata) > 0 {
		entry.Metadata = cloneMetadata(m.Metadata)
	}

	if m.Current != nil {
		curr, err := m.Current(ctx, result)
		if err != nil {
			e.log.WarnContext(ctx, "activity.extract_current_failed",
				slog.String("entity_type", m.EntityType.String()),
				slog.String("entity_id", entry.EntityID),
				slog.String("action", m.Action.String()),
				slog.String("error", err.Error()),
			)
			e.rec.metrics.ExtractFailures.WithLabelValues(m.EntityType.String()).Inc()

			if entry.Metadata == nil {
				entry.Metadata = make(map[string]any, 1)
			}
			entry.Metadata[domain.MetadataExtractError] = err.Error()
		} else {
			entry.NewValues = curr
		}
	}

	entry.ChangedFields = Diff(entry.PreviousValues, entry.NewValues)
	return entry
}

func resolveEntityID[T any](m Mutation[T], result T) string {
	if m.EntityID != "" {
		return m.EntityID
	}
	if m.ResultID != nil {
		return m.ResultID(result)
	}
	if id, ok := any(result).(domain.Identifier); ok && !isNilPointer(id) {
		return id.EntityIdentifier()
	}
	return ""
}

func cloneMetadata(md map[string]any) map[string]any {
	out := make(map[string]any, len(md)+2)
	maps.Copy(out, md)
	return out
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
