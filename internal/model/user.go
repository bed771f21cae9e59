package model

import "time"

// User is an authenticated account in the relational store. The JSON
// projection is what the admin console sees; credential material never
// leaves this layer.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RoleOrDefault returns "user" when no explicit role has been assigned.
func (u *User) RoleOrDefault() string {
	if u.Role == "" {
		return "user"
	}
	return u.Role
}
