// Package entity contains the core business objects of the back office.
package entity

// Role represents the access level of an account in the system.
type Role string

const (
	// RoleClient is a customer account with no back-office privileges.
	RoleClient Role = "client"
	// RoleStaff can manage the catalog and any non-admin-authored records.
	RoleStaff Role = "staff"
	// RoleAdmin has unrestricted access.
	RoleAdmin Role = "admin"
	// RoleManager is a reporting-oriented role; it holds no mutation grants beyond self-edit.
	RoleManager Role = "manager"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleStaff, RoleAdmin, RoleManager:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role carries admin privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role carries staff privileges.
func (r Role) IsStaff() bool {
	return r == RoleStaff
}
