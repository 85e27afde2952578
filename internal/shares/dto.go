package shares

import (
	"time"

	"github.com/google/uuid"
)

// ShareRequest grants a user access to a list by their account email.
type ShareRequest struct {
	Email   string `json:"email" validate:"required,email"`
	CanEdit bool   `json:"can_edit"`
}

// GranteeDTO describes one user a list has been shared with.
type GranteeDTO struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CanEdit   bool      `json:"can_edit"`
	CreatedAt time.Time `json:"created_at"`
}
