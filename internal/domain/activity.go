package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// ActivityLogEntry is an immutable record of one state-changing event.
// Entries are append-only: nothing in this codebase updates or deletes them.
type ActivityLogEntry struct {
	ID             uuid.UUID      `json:"id"`
	EntityType     EntityType     `json:"entityType"`
	EntityID       string         `json:"entityId"`
	Action         AuditAction    `json:"action"`
	ChangedFields  []string       `json:"changedFields"`
	PreviousValues Snapshot       `json:"previousValues"`
	NewValues      Snapshot       `json:"newValues"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	PerformedByID  uuid.UUID      `json:"performedById"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// Failed reports whether the entry describes a mutation attempt that failed.
func (e ActivityLogEntry) Failed() bool {
	failed, _ := e.Metadata[MetadataFailed].(bool)
	return failed
}

// Well-known metadata keys written by the activity executor.
const (
	MetadataError        = "error"
	MetadataFailed       = "failed"
	MetadataExtractError = "extract_error"
)

// ActivityFilter selects activity entries for the read API.
type ActivityFilter struct {
	EntityType    *EntityType
	EntityID      *string
	PerformedByID *uuid.UUID
	Limit         int
	Offset        int
}

// Snapshot is a flat field-name-to-value view of an entity at a point in time.
type Snapshot map[string]any

// Identifier is implemented by entities that can report their own identifier.
type Identifier interface {
	EntityIdentifier() string
}

// SnapshotOf converts v into a Snapshot using its JSON field names.
// Values go through a JSON round trip so that numbers, times and nested
// structures compare structurally. A nil value (or nil pointer) yields nil.
func SnapshotOf(v any) (Snapshot, error) {
	if v == nil {
		return nil, nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("snapshot marshal: %w", err)
	}
	if bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var snap Snapshot
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("snapshot of %T: %w", v, err)
	}
	return snap, nil
}
