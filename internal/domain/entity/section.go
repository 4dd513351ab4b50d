package entity

// Section is a dashboard area guarded by a role allow-list.
type Section struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Allowed Roles  `json:"allowed"`
}

// DefaultSections is the section table the route guard enforces.
func DefaultSections() []Section {
	everyone := Roles{RoleStaff, RoleManager, RoleHR, RoleAccountant, RoleAdmin, RoleOfficeAdmin}

	return []Section{
		{Key: "staff", Title: "Staff", Allowed: everyone},
		{Key: "manager", Title: "Manager", Allowed: Roles{RoleManager, RoleAdmin}},
		{Key: "hr", Title: "Human Resources", Allowed: Roles{RoleHR, RoleAdmin}},
		{Key: "accountant", Title: "Accounting", Allowed: Roles{RoleAccountant, RoleAdmin}},
		{Key: "admin", Title: "Administration", Allowed: Roles{RoleAdmin}},
		{Key: "office-admin", Title: "Office Administration", Allowed: Roles{RoleOfficeAdmin, RoleAdmin}},
	}
}

// FindSection looks up a section by key.
func FindSection(sections []Section, key string) (Section, bool) {
	for _, s := range sections {
		if s.Key == key {
			return s, true
		}
	}

	return Section{}, false
}

// AccessibleSections filters sections to the ones the profile may open.
func AccessibleSections(sections []Section, profile *Profile) []Section {
	result := make([]Section, 0, len(sections))
	for _, s := range sections {
		if profile.HasAnyRole(s.Allowed) {
			result = append(result, s)
		}
	}

	return result
}
