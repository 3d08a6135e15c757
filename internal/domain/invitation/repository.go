package invitation

import (
	"context"
	"time"
)

// InvitationRepository defines the interface for invitation data access
type InvitationRepository interface {
	// Create inserts a new PENDING invitation. The storage layer enforces
	// at most one PENDING row per (user, organization) pair; a violation
	// is returned as ErrPendingInvitationExists.
	Create(ctx context.Context, inv Invitation) (Invitation, error)

	// GetByID retrieves an invitation by its id
	GetByID(ctx context.Context, id string) (Invitation, error)

	// LatestForPair retrieves the most recently created invitation for a
	// (user, organization) pair, ErrInvitationNotFound when none exists
	LatestForPair(ctx context.Context, userID, organizationID string) (Invitation, error)

	// ListByUser lists all invitations addressed to a user
	ListByUser(ctx context.Context, userID string) ([]Invitation, error)

	// ListByOrganization lists all invitations issued by an organization
	ListByOrganization(ctx context.Context, organizationID string) ([]Invitation, error)

	// ListStalePending lists PENDING invitations created before the cutoff
	ListStalePending(ctx context.Context, before time.Time) ([]Invitation, error)

	// UpdateStatusIfPending moves the invitation to status only when the
	// row is still PENDING at write time (compare-and-set). Returns
	// ErrInvalidTransition when the row exists but is no longer PENDING,
	// ErrInvitationNotFound when it does not exist.
	UpdateStatusIfPending(ctx context.Context, id string, status Status, updatedBy string) (Invitation, error)

	// Delete removes the invitation row entirely (administrative hard delete)
	Delete(ctx context.Context, id string) error
}
