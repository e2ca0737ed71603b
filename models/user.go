package models

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// User is an authenticable account. Passwords are stored in plaintext; this
// core is a demo persistence layer, not a hardened auth system.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Principal is the slice of User exposed to the session layer. It never
// carries the password.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

func (u User) Principal() Principal {
	return Principal{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}
