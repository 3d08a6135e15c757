package invitation

import (
	"context"
	"time"
)

// InvitationService defines the interface for invitation business logic
type InvitationService interface {
	// Create validates the request, sanitizes the message, inserts a
	// PENDING invitation and emits an InvitationCreated event. Fails
	// when a PENDING invitation already exists for the pair or the most
	// recent one was REJECTED.
	Create(ctx context.Context, req CreateRequest, actorID string) (InvitationResponse, error)

	// UpdateStatus moves a PENDING invitation to ACCEPTED or REJECTED
	// and emits the matching event
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest, actorID string) (InvitationResponse, error)

	// ListByUser lists invitations addressed to a user
	ListByUser(ctx context.Context, userID string) ([]InvitationResponse, error)

	// ListByOrganization lists invitations issued by an organization
	ListByOrganization(ctx context.Context, organizationID string) ([]InvitationResponse, error)

	// Delete hard-deletes an invitation (administrative, no event)
	Delete(ctx context.Context, id string) error

	// ExpireStale sweeps PENDING invitations older than the retention
	// window to EXPIRED and returns how many were transitioned. Safe to
	// re-run; rows that lost a concurrent accept/reject are skipped.
	ExpireStale(ctx context.Context, now time.Time) (int, error)
}
