package user

import (
	"strings"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

// UpdateProfileInput holds parameters for profile update operation.
type UpdateProfileInput struct {
	Name string
}

func (i *UpdateProfileInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs domain.FieldErrors

	if i.Name == "" {
		errs.Add("name", "required")
	} else if len(i.Name) > 255 {
		errs.Add("name", "too long")
	}

	return errs.Err()
}
