package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCurrency is used when a deal is created without a currency.
const DefaultCurrency = "USD"

// Deal is a sales opportunity moving through the pipeline.
// Amount is stored in minor currency units.
type Deal struct {
	ID        uuid.UUID  `db:"id"         json:"id"`
	OwnerID   uuid.UUID  `db:"owner_id"   json:"ownerId"`
	Name      string     `db:"name"       json:"name"`
	CompanyID *uuid.UUID `db:"company_id" json:"companyId"`
	ContactID *uuid.UUID `db:"contact_id" json:"contactId"`
	Stage     DealStage  `db:"stage"      json:"stage"`
	Amount    int64      `db:"amount"     json:"amount"`
	Currency  string     `db:"currency"   json:"currency"`
	Priority  Priority   `db:"priority"   json:"priority"`
	CloseDate *time.Time `db:"close_date" json:"closeDate"`
	Tags      []string   `db:"tags"       json:"tags"`
	Notes     *string    `db:"notes"      json:"notes"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `db:"updated_at" json:"updatedAt"`
}

func (d Deal) EntityIdentifier() string { return d.ID.String() }

// DealUpdateParams holds optional fields for a partial deal update.
type DealUpdateParams struct {
	Name      *string
	CompanyID *uuid.UUID
	ContactID *uuid.UUID
	Stage     *DealStage
	Amount    *int64
	Currency  *string
	Priority  *Priority
	CloseDate *time.Time
	Tags      *[]string
	Notes     *string
}

// IsEmpty reports whether no field is set.
func (p DealUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.CompanyID == nil && p.ContactID == nil && p.Stage == nil &&
		p.Amount == nil && p.Currency == nil && p.Priority == nil && p.CloseDate == nil &&
		p.Tags == nil && p.Notes == nil
}

// DealFilter narrows deal listings.
type DealFilter struct {
	Search    *string
	Stage     *DealStage
	CompanyID *uuid.UUID
	Limit     int
	Offset    int
}
