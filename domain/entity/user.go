package entity

import (
	"time"
)

// RoleAdmin is the only privileged role in the system. Exactly one
// administrative account exists, seeded at startup.
const RoleAdmin = "admin"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUser(id, email, password string) *User {
	now := time.Now()
	return &User{
		ID:        id,
		Email:     email,
		Password:  password,
		Role:      RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
