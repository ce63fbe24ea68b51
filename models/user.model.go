package models

// Roles known to the remote education API.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User is the identity record returned by the auth endpoints and stored in the session.
type User struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`
	Address     string `json:"address"`
	Role        string `json:"role"`
}

func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// ValidRole reports whether the stored role is one the portal knows how to gate.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleAdmin
}
