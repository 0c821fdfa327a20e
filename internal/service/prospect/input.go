package prospect

import (
	"strings"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

const (
	maxNameLen   = 255
	maxSourceLen = 100
	maxNotesLen  = 10000
)

// CreateInput holds parameters for creating a prospect.
type CreateInput struct {
	FullName    string
	Email       *string
	Phone       *string
	CompanyName *string
	Status      domain.ProspectStatus
	Source      *string
	Notes       *string
}

func (i *CreateInput) normalize() {
	i.FullName = strings.TrimSpace(i.FullName)
	if i.Email = domain.TrimOptional(i.Email); i.Email != nil {
		e := domain.NormalizeEmail(*i.Email)
		i.Email = &e
	}
	i.Phone = domain.TrimOptional(i.Phone)
	i.CompanyName = domain.TrimOptional(i.CompanyName)
	i.Source = domain.TrimOptional(i.Source)
	i.Notes = domain.TrimOptional(i.Notes)
	if i.Status == "" {
		i.Status = domain.ProspectStatusNew
	}
}

// Validate validates the create input. New prospects cannot start out converted.
func (i CreateInput) Validate() error {
	var errs domain.FieldErrors

	switch {
	case i.FullName == "":
		errs.Add("fullName", "required")
	case len(i.FullName) > maxNameLen:
		errs.Add("fullName", "too long")
	}
	switch {
	case !i.Status.IsValid():
		errs.Add("status", "invalid value")
	case i.Status == domain.ProspectStatusConverted:
		errs.Add("status", "use convert to mark a prospect converted")
	}
	validateCommon(&errs, i.Email, i.Source, i.Notes)

	return errs.Err()
}

// UpdateInput holds parameters for a partial prospect update.
type UpdateInput struct {
	FullName    *string
	Email       *string
	Phone       *string
	CompanyName *string
	Status      *domain.ProspectStatus
	Source      *string
	Notes       *string
}

func (i *UpdateInput) normalize() {
	i.FullName = domain.TrimPatch(i.FullName)
	i.Phone = domain.TrimPatch(i.Phone)
	i.CompanyName = domain.TrimPatch(i.CompanyName)
	i.Source = domain.TrimPatch(i.Source)
	i.Notes = domain.TrimPatch(i.Notes)
	if i.Email != nil {
		e := domain.NormalizeEmail(*i.Email)
		i.Email = &e
	}
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs domain.FieldErrors

	if i.FullName != nil {
		switch name := strings.TrimSpace(*i.FullName); {
		case name == "":
			errs.Add("fullName", "must not be empty")
		case len(name) > maxNameLen:
			errs.Add("fullName", "too long")
		}
	}
	if i.Status != nil {
		switch {
		case !i.Status.IsValid():
			errs.Add("status", "invalid value")
		case *i.Status == domain.ProspectStatusConverted:
			errs.Add("status", "use convert to mark a prospect converted")
		}
	}
	validateCommon(&errs, i.Email, i.Source, i.Notes)
	if i.FullName == nil && i.Email == nil && i.Phone == nil && i.CompanyName == nil &&
		i.Status == nil && i.Source == nil && i.Notes == nil {
		errs.Add("input", "at least one field must be set")
	}

	return errs.Err()
}

func (i UpdateInput) params() domain.ProspectUpdateParams {
	return domain.ProspectUpdateParams{
		FullName:    i.FullName,
		Email:       i.Email,
		Phone:       i.Phone,
		CompanyName: i.CompanyName,
		Status:      i.Status,
		Source:      i.Source,
		Notes:       i.Notes,
	}
}

// ConvertInput holds options for converting a prospect into a customer.
type ConvertInput struct {
	CompanyID *uuid.UUID
	Tags      []string
}

func validateCommon(errs *domain.FieldErrors, email, source, notes *string) {
	if email != nil {
		if e := domain.NormalizeEmail(*email); e != "" && !domain.ValidEmail(e) {
			errs.Add("email", "invalid format")
		}
	}
	if source != nil && len(*source) > maxSourceLen {
		errs.Add("source", "too long")
	}
	if notes != nil && len(*notes) > maxNotesLen {
		errs.Add("notes", "too long")
	}
}
