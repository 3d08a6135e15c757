package invitation

import "time"

// Status represents the lifecycle state of an invitation
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
	StatusExpired  Status = "EXPIRED"
)

// Valid reports whether s is a known status value
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusExpired:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed from s.
// Every status except PENDING is terminal.
func (s Status) Terminal() bool {
	return s != StatusPending
}

// Invitation represents an invitation of a user into an organization
type Invitation struct {
	ID             string
	UserID         string
	OrganizationID string
	Message        string
	Status         Status
	CreatedBy      string
	UpdatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ExpiryEligible reports whether the invitation is due to be swept to
// EXPIRED: still pending and created before now minus the retention
// window. Eligibility is derived, never stored.
func (i *Invitation) ExpiryEligible(now time.Time, retention time.Duration) bool {
	return i.Status == StatusPending && i.CreatedAt.Before(now.Add(-retention))
}
