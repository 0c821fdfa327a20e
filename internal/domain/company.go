package domain

import (
	"time"

	"github.com/google/uuid"
)

// Company is an organization tracked in the CRM.
type Company struct {
	ID        uuid.UUID     `db:"id"         json:"id"`
	OwnerID   uuid.UUID     `db:"owner_id"   json:"ownerId"`
	Name      string        `db:"name"       json:"name"`
	Industry  *string       `db:"industry"   json:"industry"`
	Website   *string       `db:"website"    json:"website"`
	Email     *string       `db:"email"      json:"email"`
	Phone     *string       `db:"phone"      json:"phone"`
	Address   *string       `db:"address"    json:"address"`
	Status    CompanyStatus `db:"status"     json:"status"`
	Notes     *string       `db:"notes"      json:"notes"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time     `db:"updated_at" json:"updatedAt"`
}

func (c Company) EntityIdentifier() string { return c.ID.String() }

// CompanyUpdateParams holds optional fields for a partial company update.
// A nil field is left unchanged.
type CompanyUpdateParams struct {
	Name     *string
	Industry *string
	Website  *string
	Email    *string
	Phone    *string
	Address  *string
	Status   *CompanyStatus
	Notes    *string
}

// CompanyFilter narrows company listings.
type CompanyFilter struct {
	Search *string
	Status *CompanyStatus
	Limit  int
	Offset int
}
