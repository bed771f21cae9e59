package auth

// Assignable roles. The empty string means "no role" and is stored as
// NULL in the user table.
const (
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// ValidRole reports whether s is a member of the closed role set.
func ValidRole(s string) bool {
	switch s {
	case "", RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Tier is the coarse capability level derived from a role string.
type Tier int

const (
	// TierNone grants read-only access and no mutation rights.
	TierNone Tier = iota
	// TierManager can create, edit and delete update records.
	TierManager
	// TierAdmin additionally manages user accounts.
	TierAdmin
)

// TierForRole classifies a role string. Unknown or empty roles fall into
// TierNone. Classification is a pure function computed per request and
// never cached.
func TierForRole(role string) Tier {
	switch role {
	case RoleAdmin:
		return TierAdmin
	case RoleManager:
		return TierManager
	}
	return TierNone
}

// CanManageUpdates reports whether the tier may mutate update records.
func (t Tier) CanManageUpdates() bool {
	return t >= TierManager
}

// CanManageUsers reports whether the tier may list accounts and change
// roles.
func (t Tier) CanManageUsers() bool {
	return t == TierAdmin
}
