package activity

import (
	"context"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

// Store durably appends activity entries.
// Implementations receive fully populated entries (ID and CreatedAt set).
type Store interface {
	Append(ctx context.Context, entry domain.ActivityLogEntry) error
}
