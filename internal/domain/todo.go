package domain

import (
	"time"

	"github.com/google/uuid"
)

// Todo is a task, optionally linked to a deal, customer or prospect.
type Todo struct {
	ID          uuid.UUID  `db:"id"           json:"id"`
	OwnerID     uuid.UUID  `db:"owner_id"     json:"ownerId"`
	Title       string     `db:"title"        json:"title"`
	Description *string    `db:"description"  json:"description"`
	Status      TodoStatus `db:"status"       json:"status"`
	Priority    Priority   `db:"priority"     json:"priority"`
	DueDate     *time.Time `db:"due_date"     json:"dueDate"`
	DealID      *uuid.UUID `db:"deal_id"      json:"dealId"`
	CustomerID  *uuid.UUID `db:"customer_id"  json:"customerId"`
	ProspectID  *uuid.UUID `db:"prospect_id"  json:"prospectId"`
	AssignedTo  *uuid.UUID `db:"assigned_to"  json:"assignedTo"`
	CompletedAt *time.Time `db:"completed_at" json:"completedAt"`
	CreatedAt   time.Time  `db:"created_at"   json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at"   json:"updatedAt"`
}

func (t Todo) EntityIdentifier() string { return t.ID.String() }

// IsOverdue reports whether an open todo is past its due date.
func (t Todo) IsOverdue(now time.Time) bool {
	return t.Status.IsOpen() && t.DueDate != nil && t.DueDate.Before(now)
}

// TodoUpdateParams holds optional fields for a partial todo update.
type TodoUpdateParams struct {
	Title       *string
	Description *string
	Status      *TodoStatus
	Priority    *Priority
	DueDate     *time.Time
	AssignedTo  *uuid.UUID
}

// TodoFilter narrows todo listings.
type TodoFilter struct {
	Status     *TodoStatus
	DealID     *uuid.UUID
	CustomerID *uuid.UUID
	Overdue    bool
	Limit      int
	Offset     int
}
