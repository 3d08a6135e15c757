package invitation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/digitopia/membership-backend-go/internal/domain/invitation"
	"github.com/digitopia/membership-backend-go/internal/pkg/events"
	"github.com/digitopia/membership-backend-go/internal/pkg/sanitize"
)

type InvitationServiceImpl struct {
	invitation.InvitationRepository
	publisher events.Publisher
	topic     string
	retention time.Duration
}

func NewInvitationService(invitationRepository invitation.InvitationRepository, publisher events.Publisher, topic string, retention time.Duration) invitation.InvitationService {
	return &InvitationServiceImpl{
		InvitationRepository: invitationRepository,
		publisher:            publisher,
		topic:                topic,
		retention:            retention,
	}
}

// Create implements invitation.InvitationService.
func (s *InvitationServiceImpl) Create(ctx context.Context, req invitation.CreateRequest, actorID string) (invitation.InvitationResponse, error) {
	if err := req.Validate(); err != nil {
		return invitation.InvitationResponse{}, err
	}

	// The most recent invitation for the pair decides eligibility: a
	// PENDING one blocks, and so does a REJECTED one until the workflow
	// is reset externally. Older rejected rows are irrelevant.
	latest, err := s.LatestForPair(ctx, req.UserID, req.OrganizationID)
	if err == nil {
		switch latest.Status {
		case invitation.StatusPending:
			return invitation.InvitationResponse{}, invitation.ErrPendingInvitationExists
		case invitation.StatusRejected:
			return invitation.InvitationResponse{}, invitation.ErrLastInvitationRejected
		}
	} else if !errors.Is(err, invitation.ErrInvitationNotFound) {
		return invitation.InvitationResponse{}, fmt.Errorf("failed to check previous invitations: %w", err)
	}

	created, err := s.InvitationRepository.Create(ctx, invitation.Invitation{
		UserID:         req.UserID,
		OrganizationID: req.OrganizationID,
		Message:        sanitize.Text(req.Message),
		Status:         invitation.StatusPending,
		CreatedBy:      actorID,
		UpdatedBy:      actorID,
	})
	if err != nil {
		// The storage constraint closes the race between the check above
		// and the insert; a concurrent create surfaces here as the same
		// duplicate error.
		return invitation.InvitationResponse{}, err
	}

	s.publish(ctx, created.ID, events.NewInvitationCreated(
		created.ID, created.UserID, created.OrganizationID, created.Message, actorID,
	))

	return toResponse(created), nil
}

// UpdateStatus implements invitation.InvitationService.
func (s *InvitationServiceImpl) UpdateStatus(ctx context.Context, id string, req invitation.UpdateStatusRequest, actorID string) (invitation.InvitationResponse, error) {
	if err := req.Validate(); err != nil {
		return invitation.InvitationResponse{}, err
	}

	updated, err := s.UpdateStatusIfPending(ctx, id, req.Status, actorID)
	if err != nil {
		return invitation.InvitationResponse{}, err
	}

	switch updated.Status {
	case invitation.StatusAccepted:
		s.publish(ctx, updated.ID, events.NewInvitationAccepted(
			updated.ID, updated.UserID, updated.OrganizationID, actorID,
		))
	case invitation.StatusRejected:
		s.publish(ctx, updated.ID, events.NewInvitationRejected(
			updated.ID, updated.UserID, updated.OrganizationID, actorID,
		))
	}

	return toResponse(updated), nil
}

// ListByUser implements invitation.InvitationService.
func (s *InvitationServiceImpl) ListByUser(ctx context.Context, userID string) ([]invitation.InvitationResponse, error) {
	invs, err := s.InvitationRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(invs), nil
}

// ListByOrganization implements invitation.InvitationService.
func (s *InvitationServiceImpl) ListByOrganization(ctx context.Context, organizationID string) ([]invitation.InvitationResponse, error) {
	invs, err := s.InvitationRepository.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	return toResponses(invs), nil
}

// Delete implements invitation.InvitationService.
func (s *InvitationServiceImpl) Delete(ctx context.Context, id string) error {
	return s.InvitationRepository.Delete(ctx, id)
}

// ExpireStale implements invitation.InvitationService. Each row is
// swept with the same conditional write user transitions use, so a
// concurrent accept or reject wins or loses cleanly, never both. Rows
// that fail individually are logged and skipped; the next scheduled
// run picks up whatever is left.
func (s *InvitationServiceImpl) ExpireStale(ctx context.Context, now time.Time) (int, error) {
	stale, err := s.ListStalePending(ctx, now.Add(-s.retention))
	if err != nil {
		return 0, fmt.Errorf("failed to list stale invitations: %w", err)
	}

	count := 0
	for _, inv := range stale {
		expired, err := s.UpdateStatusIfPending(ctx, inv.ID, invitation.StatusExpired, inv.UpdatedBy)
		if err != nil {
			if errors.Is(err, invitation.ErrInvalidTransition) || errors.Is(err, invitation.ErrInvitationNotFound) {
				// Lost the race to a user action or a concurrent sweep.
				continue
			}
			slog.Error("Failed to expire invitation", "invitation_id", inv.ID, "error", err)
			continue
		}

		s.publish(ctx, expired.ID, events.NewInvitationExpired(
			expired.ID, expired.UserID, expired.OrganizationID,
		))
		count++
	}

	return count, nil
}

// publish emits an event after the triggering write has committed. A
// failed publish is an operational gap, not a request failure: the
// state change stays committed and the error is only logged.
func (s *InvitationServiceImpl) publish(ctx context.Context, key string, evt events.Event) {
	if err := s.publisher.Publish(ctx, s.topic, key, evt); err != nil {
		slog.Error("Failed to publish invitation event",
			"event_type", evt.EventType,
			"invitation_id", evt.InvitationID,
			"error", err,
		)
	}
}

func toResponse(inv invitation.Invitation) invitation.InvitationResponse {
	return invitation.InvitationResponse{
		ID:             inv.ID,
		UserID:         inv.UserID,
		OrganizationID: inv.OrganizationID,
		Message:        inv.Message,
		Status:         inv.Status,
		CreatedBy:      inv.CreatedBy,
		UpdatedBy:      inv.UpdatedBy,
		CreatedAt:      inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      inv.UpdatedAt.Format(time.RFC3339),
	}
}

func toResponses(invs []invitation.Invitation) []invitation.InvitationResponse {
	responses := make([]invitation.InvitationResponse, 0, len(invs))
	for _, inv := range invs {
		responses = append(responses, toResponse(inv))
	}
	return responses
}
