package activity

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

// Recorder validates entries, stamps them with an ID and creation time and
// hands them to a Store.
type Recorder struct {
	store   Store
	log     *slog.Logger
	metrics *Metrics
	now     func() time.Time
	newID   func() uuid.UUID
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) { r.now = now }
}

// WithIDGenerator overrides the generator used for entry IDs.
func WithIDGenerator(gen func() uuid.UUID) RecorderOption {
	return func(r *Recorder) { r.newID = gen }
}

// NewRecorder creates a Recorder writing to store.
func NewRecorder(log *slog.Logger, store Store, metrics *Metrics, opts ...RecorderOption) *Recorder {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	r := &Recorder{
		store:   store,
		log:     log.With("component", "activity_recorder"),
		metrics: metrics,
		now:     time.Now,
		newID:   uuid.New,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record appends entry and swallows every failure, including panics raised by
// the store. Failures are logged and counted.
func (r *Recorder) Record(ctx context.Context, entry domain.ActivityLogEntry) {
	if err := r.Append(ctx, entry); err != nil {
		r.log.WarnContext(ctx, "activity.append_failed",
			slog.String("entity_type", entry.EntityType.String()),
			slog.String("entity_id", entry.EntityID),
			slog.String("action", entry.Action.String()),
			slog.String("user_id", entry.PerformedByID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// Append is the strict variant of Record: it returns the failure instead of
// logging it. Used when the entry must commit together with the mutation.
func (r *Recorder) Append(ctx context.Context, entry domain.ActivityLogEntry) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("activity store panic: %v", rec)
			r.metrics.AppendFailures.WithLabelValues(entry.EntityType.String(), "panic").Inc()
		}
	}()

	entry = r.stamp(entry)

	if err := validateEntry(entry); err != nil {
		r.metrics.AppendFailures.WithLabelValues(entry.EntityType.String(), "invalid").Inc()
		return err
	}

	if err := r.store.Append(ctx, entry); err != nil {
		r.metrics.AppendFailures.WithLabelValues(entry.EntityType.String(), "store").Inc()
		return fmt.Errorf("append activity entry: %w", err)
	}

	outcome := "success"
	if entry.Failed() {
		outcome = "failed"
	}
	r.metrics.EntriesWritten.WithLabelValues(entry.EntityType.String(), entry.Action.String(), outcome).Inc()
	return nil
}

func (r *Recorder) stamp(entry domain.ActivityLogEntry) domain.ActivityLogEntry {
	if entry.ID == uuid.Nil {
		entry.ID = r.newID()
	}
	entry.CreatedAt = r.now().UTC()
	if entry.ChangedFields == nil {
		entry.ChangedFields = []string{}
	}
	if entry.Metadata != nil {
		entry.Metadata = maps.Clone(entry.Metadata)
	}
	return entry
}

func validateEntry(e domain.ActivityLogEntry) error {
	switch {
	case e.EntityID == "":
		return fmt.Errorf("%w: empty entity id", ErrInvalidEntry)
	case e.PerformedByID == uuid.Nil:
		return fmt.Errorf("%w: empty performer", ErrInvalidEntry)
	case !e.Action.IsValid():
		return fmt.Errorf("%w: action %q", ErrInvalidEntry, e.Action)
	case !e.EntityType.IsValid():
		return fmt.Errorf("%w: entity type %q", ErrInvalidEntry, e.EntityType)
	}
	return nil
}
