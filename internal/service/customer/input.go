package customer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

const (
	maxNameLen  = 255
	maxTags     = 20
	maxTagLen   = 50
	maxNotesLen = 10000
)

// CreateInput holds parameters for creating a customer.
type CreateInput struct {
	FullName  string
	Email     *string
	Phone     *string
	CompanyID *uuid.UUID
	Status    domain.CustomerStatus
	Tags      []string
	Notes     *string
}

func (i *CreateInput) normalize() {
	i.FullName = strings.TrimSpace(i.FullName)
	i.Email = normalizeEmail(i.Email)
	i.Phone = domain.TrimOptional(i.Phone)
	i.Notes = domain.TrimOptional(i.Notes)
	i.Tags = domain.NormalizeTags(i.Tags)
	if i.Status == "" {
		i.Status = domain.CustomerStatusActive
	}
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs domain.FieldErrors

	switch {
	case i.FullName == "":
		errs.Add("fullName", "required")
	case len(i.FullName) > maxNameLen:
		errs.Add("fullName", "too long")
	}
	if !i.Status.IsValid() {
		errs.Add("status", "invalid value")
	}
	validateCommon(&errs, i.Email, &i.Tags, i.Notes)

	return errs.Err()
}

// UpdateInput holds parameters for a partial customer update.
// ClearCompany unlinks the customer from its company and wins over CompanyID.
type UpdateInput struct {
	FullName     *string
	Email        *string
	Phone        *string
	CompanyID    *uuid.UUID
	ClearCompany bool
	Status       *domain.CustomerStatus
	Tags         *[]string
	Notes        *string
}

func (i *UpdateInput) normalize() {
	i.FullName = domain.TrimPatch(i.FullName)
	i.Phone = domain.TrimPatch(i.Phone)
	i.Notes = domain.TrimPatch(i.Notes)
	if i.Email != nil {
		e := domain.NormalizeEmail(*i.Email)
		i.Email = &e
	}
	if i.Tags != nil {
		tags := domain.NormalizeTags(*i.Tags)
		i.Tags = &tags
	}
	if i.ClearCompany {
		i.CompanyID = nil
	}
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs domain.FieldErrors

	if i.FullName != nil {
		switch {
		case *i.FullName == "":
			errs.Add("fullName", "must not be empty")
		case len(*i.FullName) > maxNameLen:
			errs.Add("fullName", "too long")
		}
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs.Add("status", "invalid value")
	}
	validateCommon(&errs, i.Email, i.Tags, i.Notes)
	if i.FullName == nil && i.Email == nil && i.Phone == nil && i.CompanyID == nil &&
		!i.ClearCompany && i.Status == nil && i.Tags == nil && i.Notes == nil {
		errs.Add("input", "at least one field must be set")
	}

	return errs.Err()
}

func (i UpdateInput) params() domain.CustomerUpdateParams {
	return domain.CustomerUpdateParams{
		FullName:     i.FullName,
		Email:        i.Email,
		Phone:        i.Phone,
		CompanyID:    i.CompanyID,
		ClearCompany: i.ClearCompany,
		Status:       i.Status,
		Tags:         i.Tags,
		Notes:        i.Notes,
	}
}

func normalizeEmail(email *string) *string {
	email = domain.TrimOptional(email)
	if email == nil {
		return nil
	}
	e := domain.NormalizeEmail(*email)
	return &e
}

func validateCommon(errs *domain.FieldErrors, email *string, tags *[]string, notes *string) {
	if email != nil && *email != "" && !domain.ValidEmail(*email) {
		errs.Add("email", "invalid format")
	}
	if tags != nil {
		if len(*tags) > maxTags {
			errs.Add("tags", "too many")
		}
		for _, tag := range *tags {
			if len(tag) > maxTagLen {
				errs.Add("tags", "tag too long")
				break
			}
		}
	}
	if notes != nil && len(*notes) > maxNotesLen {
		errs.Add("notes", "too long")
	}
}
