// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the dashboard role attached to a profile.
type Role string

const (
	// RoleStaff is the baseline role every signed-in identity falls back to.
	RoleStaff Role = "staff"
	// RoleManager indicates a team or department manager.
	RoleManager Role = "manager"
	// RoleHR indicates a human-resources operator.
	RoleHR Role = "hr"
	// RoleAccountant indicates a finance operator.
	RoleAccountant Role = "accountant"
	// RoleAdmin indicates a full administrator.
	RoleAdmin Role = "admin"
	// RoleOfficeAdmin indicates an office administrator.
	RoleOfficeAdmin Role = "office_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStaff, RoleManager, RoleHR, RoleAccountant, RoleAdmin, RoleOfficeAdmin:
		return true
	default:
		return false
	}
}

// AccountType is the secondary classification used for routing. It shares the
// role vocabulary but may differ from the profile's role.
type AccountType string

const (
	AccountTypeStaff       AccountType = "staff"
	AccountTypeManager     AccountType = "manager"
	AccountTypeHR          AccountType = "hr"
	AccountTypeAccountant  AccountType = "accountant"
	AccountTypeAdmin       AccountType = "admin"
	AccountTypeOfficeAdmin AccountType = "office_admin"
)

// String returns the string representation of the AccountType.
func (a AccountType) String() string {
	return string(a)
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ContainsValue reports whether any role in the slice has the given string value.
// Route guards use it to match account types against a role allow-list.
func (rs Roles) ContainsValue(value string) bool {
	return slices.ContainsFunc(rs, func(r Role) bool {
		return string(r) == value
	})
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
