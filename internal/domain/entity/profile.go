// Package entity contains the core business objects of the project.
package entity

// Profile holds the authorization and display attributes derived from an Identity.
// Profiles are replaced wholesale by the resolver and must be treated as read-only.
type Profile struct {
	ID          string      `json:"id"`           // Always equal to the owning Identity's ID.
	Role        Role        `json:"role"`         // Primary dashboard role.
	AccountType AccountType `json:"account_type"` // Secondary classification used for routing.
	FullName    *string     `json:"full_name"`    // Display name, nil when unknown.
	Email       *string     `json:"email"`        // Contact email, nil when unknown.
}

// DefaultProfile is the fail-open profile used when the profile store has no
// usable row for the identity.
func DefaultProfile(id string) *Profile {
	return &Profile{
		ID:          id,
		Role:        RoleStaff,
		AccountType: AccountTypeStaff,
	}
}

// IsDefault reports whether the profile carries only the fallback attributes.
func (p *Profile) IsDefault() bool {
	return p != nil &&
		p.Role == RoleStaff &&
		p.AccountType == AccountTypeStaff &&
		p.FullName == nil &&
		p.Email == nil
}

// HasAnyRole reports whether the profile's role or account type is in the allowed set.
func (p *Profile) HasAnyRole(allowed Roles) bool {
	if p == nil {
		return false
	}

	return allowed.Contains(p.Role) || allowed.ContainsValue(p.AccountType.String())
}

// AuthState is the single source of truth published by the session resolver.
// Consumers must not make routing decisions while Loading is true.
type AuthState struct {
	Identity *Identity `json:"identity"`
	Profile  *Profile  `json:"profile"`
	Loading  bool      `json:"loading"`
}

// SignedIn reports whether the state carries a resolved identity and profile.
func (s AuthState) SignedIn() bool {
	return !s.Loading && s.Identity != nil && s.Profile != nil
}

// SignedOut reports whether the state is resolved with no identity.
func (s AuthState) SignedOut() bool {
	return !s.Loading && s.Identity == nil
}
