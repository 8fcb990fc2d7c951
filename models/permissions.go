package models

// PermissionKey names a capability gate checked at route entry.
type PermissionKey string

const (
	PermAdmin          PermissionKey = "ADMIN"
	PermAdminDashboard PermissionKey = "ADMIN_DASHBOARD"
	PermHoldingsRead   PermissionKey = "HOLDINGS_READ"
	PermHoldingsWrite  PermissionKey = "HOLDINGS_WRITE"
	PermSecretary      PermissionKey = "SECRETARY"
)

// roleRanks is the total order used for the "who may modify whom" rule.
// Rank plays no part in permission membership.
var roleRanks = map[Role]int{
	RoleAdmin:         4,
	RolePresident:     3,
	RoleVicePresident: 2,
	RoleSecretary:     1,
	RoleHoldingsWrite: 1,
	RoleHoldingsRead:  1,
	RoleUser:          0,
}

// rolePermissions maps each role to its granted permission keys.
// Built once at process start; never mutated.
var rolePermissions = map[Role]map[PermissionKey]bool{
	RoleAdmin: {
		PermAdmin:          true,
		PermAdminDashboard: true,
		PermHoldingsRead:   true,
		PermHoldingsWrite:  true,
		PermSecretary:      true,
	},
	RolePresident: {
		PermAdmin:          true,
		PermAdminDashboard: true,
		PermHoldingsRead:   true,
		PermHoldingsWrite:  true,
		PermSecretary:      true,
	},
	RoleVicePresident: {
		PermAdmin:          true,
		PermAdminDashboard: true,
		PermHoldingsRead:   true,
		PermHoldingsWrite:  true,
		PermSecretary:      true,
	},
	RoleHoldingsWrite: {
		PermAdminDashboard: true,
		PermHoldingsRead:   true,
		PermHoldingsWrite:  true,
	},
	RoleSecretary: {
		PermAdminDashboard: true,
		PermHoldingsRead:   true,
		PermSecretary:      true,
	},
	RoleHoldingsRead: {
		PermHoldingsRead: true,
	},
	RoleUser: {},
}

// RoleRank returns the rank for a role, or -1 for an unknown role.
func RoleRank(role Role) int {
	rank, ok := roleRanks[role]
	if !ok {
		return -1
	}
	return rank
}

// RoleHasPermission reports whether the role holds the given permission key.
// Unknown roles hold nothing.
func RoleHasPermission(role Role, key PermissionKey) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	return perms[key]
}

// CanEditUserRole reports whether actor may change target's role. Strictly
// rank-based: actor and target must be different users and actor must
// outrank target. Equal-rank roles can never modify each other.
func CanEditUserRole(actor, target *User) bool {
	if actor == nil || target == nil {
		return false
	}
	if actor.ID == target.ID {
		return false
	}
	return RoleRank(actor.Role) > RoleRank(target.Role)
}

// CanDeleteUser follows the same rank rule as CanEditUserRole.
func CanDeleteUser(actor, target *User) bool {
	return CanEditUserRole(actor, target)
}
