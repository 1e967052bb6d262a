// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package sec

// # Account Roles

// AccountRole tags an account as the rider or driver variant of the
// single polymorphic Account entity.
type AccountRole string

const (
	// Passenger accounts: favourites, profile, booking history
	RoleRider AccountRole = "rider"

	// Driver accounts: additionally own vehicles, documents, and trip orders
	RoleDriver AccountRole = "driver"
)

// IsValid reports whether the role is one of the known account variants.
func (r AccountRole) IsValid() bool {
	return r == RoleRider || r == RoleDriver
}

// Is reports whether the role matches the target exactly.
//
// There is deliberately no role hierarchy: a valid token grants access to
// every gated route of its own variant and nothing more.
func (r AccountRole) Is(target AccountRole) bool {
	return r == target
}
