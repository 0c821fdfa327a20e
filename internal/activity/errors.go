package activity

import (
	"errors"
	"fmt"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

// ErrInvalidMutation is returned when a Mutation is missing required fields.
// It indicates a programming error in the caller; nothing is executed or logged.
var ErrInvalidMutation = errors.New("invalid mutation")

// ErrInvalidEntry is returned by Recorder.Append for entries that break the
// log invariants (empty entity id, missing user, unknown action).
var ErrInvalidEntry = errors.New("invalid activity entry")

// PreconditionError reports that the previous-state loader failed.
// The operation was not attempted and no entry was written.
type PreconditionError struct {
	EntityType domain.EntityType
	EntityID   string
	Err        error
}

func (e *PreconditionError) Error() string {
	if e.EntityID == "" {
		return fmt.Sprintf("load previous %s: %v", e.EntityType, e.Err)
	}
	return fmt.Sprintf("load previous %s %s: %v", e.EntityType, e.EntityID, e.Err)
}

func (e *PreconditionError) Unwrap() error { return e.Err }
