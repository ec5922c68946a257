package models

import "time"

const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleMember  = "Member"
)

const (
	MemberStatusActive   = "active"
	MemberStatusInactive = "inactive"
	MemberStatusPending  = "pending"
)

const (
	PermissionRead  = "read"
	PermissionWrite = "write"
	PermissionAdmin = "admin"
)

type TeamMember struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Department  string    `json:"department"`
	JobTitle    string    `json:"jobTitle"`
	Status      string    `json:"status"`
	JoinedAt    time.Time `json:"joinedAt"`
	LastActive  time.Time `json:"lastActive"`
	Permissions []string  `json:"permissions"`
}

// PermissionsForRole derives the capability set from a role. Unknown roles
// get the Member set.
func PermissionsForRole(role string) []string {
	switch role {
	case RoleAdmin:
		return []string{PermissionRead, PermissionWrite, PermissionAdmin}
	case RoleManager:
		return []string{PermissionRead, PermissionWrite}
	default:
		return []string{PermissionRead}
	}
}
