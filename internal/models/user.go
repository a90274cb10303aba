package models

// Role values stored in the role column.
const (
	RoleOwner = "OWNER"
	RoleStaff = "STAFF"
)

// User represents a staff or owner account
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"-"` // salted bcrypt hash, never serialized
	Role      string `json:"role"`
	Name      string `json:"name,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// UserSummary is the user payload returned on login
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
