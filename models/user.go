package models

// Role is the closed set of account roles. Keeping it a distinct type forces
// call sites to switch over the three values instead of comparing loose
// strings.
type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

// ParseRole validates a raw role string.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleOwner, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// HomePath is the default landing route for a role.
func (r Role) HomePath() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleOwner:
		return "/owner-dashboard"
	case RoleUser:
		return "/search"
	}
	return "/"
}

type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}
