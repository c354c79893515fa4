package domain

import (
	"time"

	"github.com/google/uuid"
)

// OperatorRole gates the privileged surface.
type OperatorRole string

const (
	RoleAdmin    OperatorRole = "ADMIN"
	RoleProvider OperatorRole = "PROVIDER"
)

// Operator is a human account on the administrative/provider surface.
// Workers submitting claims are not operators; a claim authenticates
// itself through its proof.
type Operator struct {
	ID           uuid.UUID    `json:"id"`
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"` // Never expose
	Role         OperatorRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
}

// IsAdmin returns true for operators allowed on the admin surface.
func (o *Operator) IsAdmin() bool {
	return o.Role == RoleAdmin
}
