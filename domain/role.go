package domain

import "fmt"

// Role is the closed set of account roles. Authorization decisions go
// through the capability methods below, never through raw string checks.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleTeacher    Role = "teacher"
	RoleStudent    Role = "student"
	RoleParent     Role = "parent"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleTeacher, RoleStudent, RoleParent:
		return Role(s), nil
	}
	return "", &ValidationError{Field: "role", Reason: fmt.Sprintf("unknown role %q", s)}
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// AdminTier reports whether the role may manage schedules and decide
// change requests.
func (r Role) AdminTier() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// Teaches reports whether the role is bound to a teacher identity.
func (r Role) Teaches() bool {
	return r == RoleTeacher
}
