package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

const (
	minPasswordLen = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLen = 72
	maxNameLen     = 255
	maxEmailLen    = 254
)

// RegisterInput holds parameters for password registration.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

func (i *RegisterInput) normalize() {
	i.Email = domain.NormalizeEmail(i.Email)
	i.Name = strings.TrimSpace(i.Name)
}

// Validate validates the registration input.
func (i RegisterInput) Validate() error {
	var errs domain.FieldErrors

	switch {
	case i.Email == "":
		errs.Add("email", "required")
	case len(i.Email) > maxEmailLen:
		errs.Add("email", "too long")
	case !domain.ValidEmail(i.Email):
		errs.Add("email", "invalid format")
	}

	if i.Name == "" {
		errs.Add("name", "required")
	} else if utf8.RuneCountInString(i.Name) > maxNameLen {
		errs.Add("name", "too long")
	}

	switch {
	case len(i.Password) < minPasswordLen:
		errs.Add("password", "must be at least 8 characters")
	case len(i.Password) > maxPasswordLen:
		errs.Add("password", "too long")
	}

	return errs.Err()
}

// LoginPasswordInput holds parameters for email + password login.
type LoginPasswordInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginPasswordInput) Validate() error {
	var errs domain.FieldErrors

	if i.Email == "" {
		errs.Add("email", "required")
	} else if len(i.Email) > maxEmailLen {
		errs.Add("email", "too long")
	}

	if i.Password == "" {
		errs.Add("password", "required")
	} else if len(i.Password) > maxPasswordLen {
		errs.Add("password", "too long")
	}

	return errs.Err()
}
