package auth

import "github.com/google/uuid"

// Identity is the caller resolved from a valid access token.
type Identity struct {
	UserID uuid.UUID
	Email  string
}
