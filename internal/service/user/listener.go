package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/digitopia/membership-backend-go/internal/domain/user"
	"github.com/digitopia/membership-backend-go/internal/pkg/events"
)

// MembershipListener reacts to invitation events and keeps the user
// side of the membership relation consistent. The membership set is
// mutated only here; nothing else writes user_organizations.
type MembershipListener struct {
	repo      user.UserRepository
	publisher events.Publisher
	topic     string
	logger    *slog.Logger
}

func NewMembershipListener(repo user.UserRepository, publisher events.Publisher, topic string, logger *slog.Logger) *MembershipListener {
	return &MembershipListener{
		repo:      repo,
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}
}

// Register subscribes the listener's handlers. Rejected and expired
// invitations have no effect on membership, so no handler is
// registered for them.
func (l *MembershipListener) Register(c *events.Consumer) {
	c.Handle(events.TypeInvitationAccepted, l.HandleInvitationAccepted)
}

// HandleInvitationAccepted adds the organization to the user's
// membership set. Safe under redelivery: the set union is a no-op when
// the organization is already present, and the audit event is emitted
// only when the set actually changed.
func (l *MembershipListener) HandleInvitationAccepted(ctx context.Context, evt events.Event) error {
	if evt.UserID == "" || evt.OrganizationID == "" {
		return fmt.Errorf("invitation accepted event %s missing user or organization id", evt.EventID)
	}

	if _, err := l.repo.GetByID(ctx, evt.UserID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// The user record is the authority; retrying a missing user
			// forever would just loop.
			l.logger.Warn("User not found for accepted invitation",
				"user_id", evt.UserID,
				"invitation_id", evt.InvitationID,
			)
			return nil
		}
		return fmt.Errorf("failed to look up user %s: %w", evt.UserID, err)
	}

	changed, err := l.repo.AddOrganization(ctx, evt.UserID, evt.OrganizationID, evt.ActorID)
	if err != nil {
		return fmt.Errorf("failed to add organization %s to user %s: %w", evt.OrganizationID, evt.UserID, err)
	}

	if !changed {
		l.logger.Info("User already belongs to organization",
			"user_id", evt.UserID,
			"organization_id", evt.OrganizationID,
		)
		return nil
	}

	l.logger.Info("Added organization to user",
		"user_id", evt.UserID,
		"organization_id", evt.OrganizationID,
	)

	audit := events.NewUserOrganizationAdded(evt.UserID, evt.OrganizationID, evt.ActorID)
	if err := l.publisher.Publish(ctx, l.topic, evt.UserID, audit); err != nil {
		l.logger.Error("Failed to publish user event",
			"event_type", audit.EventType,
			"user_id", evt.UserID,
			"error", err,
		)
	}

	return nil
}
