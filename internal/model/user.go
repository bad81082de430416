package model

import "time"

// RoleAdmin is the only role issued to back-office operators.
const RoleAdmin = "ADMIN"

// User is a back-office operator account.  The public storefront never
// touches this table; it exists to authenticate the admin surface.
type User struct {
	ID           uint64    `json:"id"`    // users.id
	Email        string    `json:"email"` // users.email
	PasswordHash string    `json:"-"`     // users.password_hash
	Role         string    `json:"role"`  // users.role
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
