package deal

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

const (
	maxNameLen  = 255
	maxTags     = 20
	maxTagLen   = 50
	maxNotesLen = 10000
)

// CreateInput holds parameters for creating a deal.
type CreateInput struct {
	Name      string
	CompanyID *uuid.UUID
	ContactID *uuid.UUID
	Stage     domain.DealStage
	Amount    int64
	Currency  string
	Priority  domain.Priority
	CloseDate *time.Time
	Tags      []string
	Notes     *string
}

func (i *CreateInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Currency = strings.ToUpper(strings.TrimSpace(i.Currency))
	if i.Currency == "" {
		i.Currency = domain.DefaultCurrency
	}
	if i.Stage == "" {
		i.Stage = domain.DealStageNew
	}
	if i.Priority == "" {
		i.Priority = domain.PriorityMedium
	}
	i.Tags = domain.NormalizeTags(i.Tags)
	i.Notes = domain.TrimOptional(i.Notes)
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
	if !i.Stage.IsValid() {
		errs.Add("stage", "invalid value")
	}
	if !i.Priority.IsValid() {
		errs.Add("priority", "invalid value")
	}
	validateCommon(&errs, &i.Amount, &i.Currency, &i.Tags, i.Notes)

	return errs.Err()
}

// UpdateInput holds parameters for a partial deal update.
type UpdateInput struct {
	Name      *string
	CompanyID *uuid.UUID
	ContactID *uuid.UUID
	Stage     *domain.DealStage
	Amount    *int64
	Currency  *string
	Priority  *domain.Priority
	CloseDate *time.Time
	Tags      *[]string
	Notes     *string
}

func (i *UpdateInput) normalize() {
	i.Name = domain.TrimPatch(i.Name)
	i.Notes = domain.TrimPatch(i.Notes)
	if i.Currency != nil {
		c := strings.ToUpper(strings.TrimSpace(*i.Currency))
		i.Currency = &c
	}
	if i.Tags != nil {
		tags := domain.NormalizeTags(*i.Tags)
		i.Tags = &tags
	}
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs domain.FieldErrors

	if i.Name != nil {
		switch {
		case *i.Name == "":
			errs.Add("name", "must not be empty")
		case len(*i.Name) > maxNameLen:
			errs.Add("name", "too long")
		}
	}
	if i.Stage != nil && !i.Stage.IsValid() {
		errs.Add("stage", "invalid value")
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs.Add("priority", "invalid value")
	}
	validateCommon(&errs, i.Amount, i.Currency, i.Tags, i.Notes)
	if i.params().IsEmpty() {
		errs.Add("input", "at least one field must be set")
	}

	return errs.Err()
}

func (i UpdateInput) params() domain.DealUpdateParams {
	return domain.DealUpdateParams{
		Name:      i.Name,
		CompanyID: i.CompanyID,
		ContactID: i.ContactID,
		Stage:     i.Stage,
		Amount:    i.Amount,
		Currency:  i.Currency,
		Priority:  i.Priority,
		CloseDate: i.CloseDate,
		Tags:      i.Tags,
		Notes:     i.Notes,
	}
}

func validateCommon(errs *domain.FieldErrors, amount *int64, currency *string, tags *[]string, notes *string) {
	if amount != nil && *amount < 0 {
		errs.Add("amount", "must not be negative")
	}
	if currency != nil && !validCurrency(*currency) {
		errs.Add("currency", "must be a 3-letter ISO code")
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

func validCurrency(c string) bool {
	if len(c) != 3 {
		return false
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
