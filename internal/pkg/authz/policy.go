// Package authz centralizes role-based permission checks so endpoints stop
// re-deriving them from raw role strings.
package authz

import "driveshare/internal/domain/user"

type Action string

const (
	ActionApproveCar    Action = "car:approve"
	ActionManageUsers   Action = "user:manage"
	ActionResolveReport Action = "report:resolve"
	ActionViewRevenue   Action = "revenue:view"
	ActionManageOffers  Action = "offer:manage"
	ActionHandleTickets Action = "ticket:handle"
)

var policy = map[Action][]user.Role{
	ActionApproveCar:    {user.RoleAdmin},
	ActionManageUsers:   {user.RoleAdmin},
	ActionResolveReport: {user.RoleAdmin},
	ActionViewRevenue:   {user.RoleAdmin},
	ActionManageOffers:  {user.RoleAdmin},
	ActionHandleTickets: {user.RoleAdmin, user.RoleSupport},
}

// Allow reports whether the role may perform the action. Resource-ownership
// checks (booking user, car owner, ticket owner) remain with the commands,
// which know the rows involved.
func Allow(role user.Role, action Action) bool {
	allowed, ok := policy[action]
	if !ok {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// IsStaff reports whether the role belongs to marketplace staff.
func IsStaff(role user.Role) bool {
	return role == user.RoleAdmin || role == user.RoleSupport
}
