package auth

// Roles known to the booking backend. Session accepts any string; these are
// the ones the navigation bar reacts to.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// KnownRoles lists the roles offered by interactive login, in display order.
func KnownRoles() []string {
	return []string{RoleUser, RoleAdmin}
}

// IsKnownRole reports whether role is one of KnownRoles.
func IsKnownRole(role string) bool {
	for _, r := range KnownRoles() {
		if r == role {
			return true
		}
	}
	return false
}
