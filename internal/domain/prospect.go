package domain

import (
	"time"

	"github.com/google/uuid"
)

// Prospect is a potential customer that has not been converted yet.
type Prospect struct {
	ID          uuid.UUID      `db:"id"           json:"id"`
	OwnerID     uuid.UUID      `db:"owner_id"     json:"ownerId"`
	FullName    string         `db:"full_name"    json:"fullName"`
	Email       *string        `db:"email"        json:"email"`
	Phone       *string        `db:"phone"        json:"phone"`
	CompanyName *string        `db:"company_name" json:"companyName"`
	Status      ProspectStatus `db:"status"       json:"status"`
	Source      *string        `db:"source"       json:"source"`
	Notes       *string        `db:"notes"        json:"notes"`
	CreatedAt   time.Time      `db:"created_at"   json:"createdAt"`
	UpdatedAt   time.Time      `db:"updated_at"   json:"updatedAt"`
}

func (p Prospect) EntityIdentifier() string { return p.ID.String() }

// ProspectUpdateParams holds optional fields for a partial prospect update.
type ProspectUpdateParams struct {
	FullName    *string
	Email       *string
	Phone       *string
	CompanyName *string
	Status      *ProspectStatus
	Source      *string
	Notes       *string
}

// ProspectFilter narrows prospect listings.
type ProspectFilter struct {
	Search *string
	Status *ProspectStatus
	Limit  int
	Offset int
}
