package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a person the user does business with.
type Customer struct {
	ID        uuid.UUID      `db:"id"         json:"id"`
	OwnerID   uuid.UUID      `db:"owner_id"   json:"ownerId"`
	FullName  string         `db:"full_name"  json:"fullName"`
	Email     *string        `db:"email"      json:"email"`
	Phone     *string        `db:"phone"      json:"phone"`
	CompanyID *uuid.UUID     `db:"company_id" json:"companyId"`
	Status    CustomerStatus `db:"status"     json:"status"`
	Tags      []string       `db:"tags"       json:"tags"`
	Notes     *string        `db:"notes"      json:"notes"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time      `db:"updated_at" json:"updatedAt"`
}

func (c Customer) EntityIdentifier() string { return c.ID.String() }

// CustomerUpdateParams holds optional fields for a partial customer update.
type CustomerUpdateParams struct {
	FullName     *string
	Email        *string
	Phone        *string
	CompanyID    *uuid.UUID
	ClearCompany bool
	Status       *CustomerStatus
	Tags         *[]string
	Notes        *string
}

// CustomerFilter narrows customer listings.
type CustomerFilter struct {
	Search    *string
	Status    *CustomerStatus
	CompanyID *uuid.UUID
	Limit     int
	Offset    int
}
