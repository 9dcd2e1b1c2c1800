package domain

// Role vocabulary shared by both identity populations.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
	RoleOwner = "propietario"
)

// User is a registered platform account. Role is nullable in storage.
type User struct {
	ID    int64
	Name  string
	Email string
	Role  *string
}
