package todo

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

const (
	maxTitleLen       = 255
	maxDescriptionLen = 10000
	maxBulkIDs        = 100
)

// CreateInput holds parameters for creating a todo.
type CreateInput struct {
	Title       string
	Description *string
	Status      domain.TodoStatus
	Priority    domain.Priority
	DueDate     *time.Time
	DealID      *uuid.UUID
	CustomerID  *uuid.UUID
	ProspectID  *uuid.UUID
	AssignedTo  *uuid.UUID
}

func (i *CreateInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Description = domain.TrimOptional(i.Description)
	if i.Status == "" {
		i.Status = domain.TodoStatusTodo
	}
	if i.Priority == "" {
		i.Priority = domain.PriorityMedium
	}
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs domain.FieldErrors

	switch {
	case i.Title == "":
		errs.Add("title", "required")
	case len(i.Title) > maxTitleLen:
		errs.Add("title", "too long")
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs.Add("description", "too long")
	}
	if !i.Status.IsValid() {
		errs.Add("status", "invalid value")
	}
	if !i.Priority.IsValid() {
		errs.Add("priority", "invalid value")
	}

	return errs.Err()
}

// UpdateInput holds parameters for a partial todo update.
type UpdateInput struct {
	Title       *string
	Description *string
	Status      *domain.TodoStatus
	Priority    *domain.Priority
	DueDate     *time.Time
	AssignedTo  *uuid.UUID
}

func (i *UpdateInput) normalize() {
	i.Title = domain.TrimPatch(i.Title)
	i.Description = domain.TrimPatch(i.Description)
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs domain.FieldErrors

	if i.Title != nil {
		switch title := strings.TrimSpace(*i.Title); {
		case title == "":
			errs.Add("title", "must not be empty")
		case len(title) > maxTitleLen:
			errs.Add("title", "too long")
		}
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs.Add("description", "too long")
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs.Add("status", "invalid value")
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs.Add("priority", "invalid value")
	}
	if i.Title == nil && i.Description == nil && i.Status == nil && i.Priority == nil &&
		i.DueDate == nil && i.AssignedTo == nil {
		errs.Add("input", "at least one field must be set")
	}

	return errs.Err()
}

func (i UpdateInput) params() domain.TodoUpdateParams {
	return domain.TodoUpdateParams{
		Title:       i.Title,
		Description: i.Description,
		Status:      i.Status,
		Priority:    i.Priority,
		DueDate:     i.DueDate,
		AssignedTo:  i.AssignedTo,
	}
}

// BulkStatusInput sets one status on many todos.
type BulkStatusInput struct {
	IDs    []uuid.UUID
	Status domain.TodoStatus
}

func (i *BulkStatusInput) normalize() {
	seen := make(map[uuid.UUID]struct{}, len(i.IDs))
	ids := i.IDs[:0:0]
	for _, id := range i.IDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	i.IDs = ids
}

// Validate validates the bulk input.
func (i BulkStatusInput) Validate() error {
	var errs domain.FieldErrors

	switch {
	case len(i.IDs) == 0:
		errs.Add("ids", "required")
	case len(i.IDs) > maxBulkIDs:
		errs.Add("ids", "too many")
	}
	if !i.Status.IsValid() {
		errs.Add("status", "invalid value")
	}

	return errs.Err()
}
