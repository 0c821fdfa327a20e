package company

import (
	"strings"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

const (
	maxNameLen    = 255
	maxWebsiteLen = 512
	maxNotesLen   = 10000
)

// CreateInput holds parameters for creating a company.
type CreateInput struct {
	Name     string
	Industry *string
	Website  *string
	Email    *string
	Phone    *string
	Address  *string
	Status   domain.CompanyStatus
	Notes    *string
}

func (i *CreateInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Industry = domain.TrimOptional(i.Industry)
	i.Website = domain.TrimOptional(i.Website)
	i.Phone = domain.TrimOptional(i.Phone)
	i.Address = domain.TrimOptional(i.Address)
	i.Notes = domain.TrimOptional(i.Notes)
	if i.Email = domain.TrimOptional(i.Email); i.Email != nil {
		e := domain.NormalizeEmail(*i.Email)
		i.Email = &e
	}
	if i.Status == "" {
		i.Status = domain.CompanyStatusActive
	}
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs domain.FieldErrors

	switch {
	case i.Name == "":
		errs.Add("name", "required")
	case len(i.Name) > maxNameLen:
		errs.Add("name", "too long")
	}
	validateOptional(&errs, i.Email, i.Website, i.Notes)
	if !i.Status.IsValid() {
		errs.Add("status", "invalid value")
	}

	return errs.Err()
}

// UpdateInput holds parameters for a partial company update.
// A nil field is left unchanged.
type UpdateInput struct {
	Name     *string
	Industry *string
	Website  *string
	Email    *string
	Phone    *string
	Address  *string
	Status   *domain.CompanyStatus
	Notes    *string
}

func (i *UpdateInput) normalize() {
	i.Name = domain.TrimPatch(i.Name)
	i.Industry = domain.TrimPatch(i.Industry)
	i.Website = domain.TrimPatch(i.Website)
	i.Phone = domain.TrimPatch(i.Phone)
	i.Address = domain.TrimPatch(i.Address)
	i.Notes = domain.TrimPatch(i.Notes)
	if i.Email != nil {
		e := domain.NormalizeEmail(*i.Email)
		i.Email = &e
	}
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs domain.FieldErrors

	if i.Name != nil {
		switch name := strings.TrimSpace(*i.Name); {
		case name == "":
			errs.Add("name", "must not be empty")
		case len(name) > maxNameLen:
			errs.Add("name", "too long")
		}
	}
	validateOptional(&errs, i.Email, i.Website, i.Notes)
	if i.Status != nil && !i.Status.IsValid() {
		errs.Add("status", "invalid value")
	}
	if i.isEmpty() {
		errs.Add("input", "at least one field must be set")
	}

	return errs.Err()
}

func (i UpdateInput) isEmpty() bool {
	return i.Name == nil && i.Industry == nil && i.Website == nil && i.Email == nil &&
		i.Phone == nil && i.Address == nil && i.Status == nil && i.Notes == nil
}

func (i UpdateInput) params() domain.CompanyUpdateParams {
	return domain.CompanyUpdateParams{
		Name:     i.Name,
		Industry: i.Industry,
		Website:  i.Website,
		Email:    i.Email,
		Phone:    i.Phone,
		Address:  i.Address,
		Status:   i.Status,
		Notes:    i.Notes,
	}
}

func validateOptional(errs *domain.FieldErrors, email, website, notes *string) {
	// A blank email clears the field.
	if email != nil {
		if e := domain.NormalizeEmail(*email); e != "" && !domain.ValidEmail(e) {
			errs.Add("email", "invalid format")
		}
	}
	if website != nil && len(*website) > maxWebsiteLen {
		errs.Add("website", "too long")
	}
	if notes != nil && len(*notes) > maxNotesLen {
		errs.Add("notes", "too long")
	}
}
