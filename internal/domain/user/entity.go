package user

import "time"

type Role string

const (
	RoleAdmin   Role = "ADMIN"   // Platform administrator
	RoleManager Role = "MANAGER" // Organization manager
	RoleUser    Role = "USER"    // Regular user
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

type Status string

const (
	StatusActive      Status = "ACTIVE"
	StatusPending     Status = "PENDING"
	StatusDeactivated Status = "DEACTIVATED"
	StatusDeleted     Status = "DELETED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPending, StatusDeactivated, StatusDeleted:
		return true
	}
	return false
}

type User struct {
	ID             string
	Email          string
	FullName       string
	NormalizedName string
	Status         Status
	Role           Role
	CreatedBy      string
	UpdatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsAdmin checks if user is a platform administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is a manager or administrator
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// InitialStatus returns the status a newly created user starts in.
// Administrators are active immediately, everyone else onboards.
func InitialStatus(role Role) Status {
	if role == RoleAdmin {
		return StatusActive
	}
	return StatusPending
}
