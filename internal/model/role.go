package model

// Role is a user's privilege level
type Role string

// Roles in ascending privilege order
const (
	RolePlayer        Role = "player"
	RolePremiumPlayer Role = "premium-player"
	RoleAdmin         Role = "admin"
)

// ParseRole validates a role string
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePlayer, RolePremiumPlayer, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// IsAdmin reports whether the role may use admin-only operations
// (user management, celebrity writes, premium request processing).
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// HasPremiumAccess reports whether the role already has premium features and
// so must not file a premium request. Admins qualify without being
// premium-players; this is a separate, looser predicate than IsAdmin.
func (r Role) HasPremiumAccess() bool {
	return r == RolePremiumPlayer || r == RoleAdmin
}
