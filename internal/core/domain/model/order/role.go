package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Role identifies the kind of actor requesting an order lifecycle change.
// Roles mirror the views of the client application: customers place orders,
// restaurants prepare them, delivery actors move them, admins oversee
// everything.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer places orders but never progresses them.
	RoleCustomer

	// RoleRestaurant progresses orders through the kitchen stages.
	RoleRestaurant

	// RoleDelivery progresses orders through the transport stages.
	RoleDelivery

	// RoleAdmin may trigger any lifecycle transition.
	RoleAdmin
)

// getRoleStrings returns a map of Role values to their wire-format strings.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "UNKNOWN",
		RoleCustomer:   "CUSTOMER",
		RoleRestaurant: "RESTAURANT",
		RoleDelivery:   "DELIVERY",
		RoleAdmin:      "ADMIN",
	}
}

// advancePermissions is the single authoritative role-permission table.
// For each role it lists the statuses FROM which that role may advance an
// order to its successor. The rule lives here and nowhere else; views ask
// CanAdvance instead of duplicating branching per role.
func advancePermissions() map[Role][]Status {
	return map[Role][]Status{
		RoleCustomer:   {},
		RoleRestaurant: {StatusReceived, StatusPreparing},
		RoleDelivery:   {StatusReady, StatusOnTheWay},
		RoleAdmin:      {StatusReceived, StatusPreparing, StatusReady, StatusOnTheWay},
	}
}

// RoleFromString parses a wire-format role string.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := advancePermissions()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire-format name of the role.
// Returns "UNKNOWN" for invalid role values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// CanAdvance reports whether the role may advance an order that is
// currently in the given status. Terminal and invalid statuses are never
// advanceable, by any role.
func CanAdvance(current Status, requester Role) bool {
	for _, status := range advancePermissions()[requester] {
		if status == current {
			return true
		}
	}
	return false
}
