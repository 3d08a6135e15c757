package user

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitopia/membership-backend-go/internal/domain/user"
	"github.com/digitopia/membership-backend-go/internal/pkg/events"
)

func newTestListener(repo user.UserRepository, publisher events.Publisher) *MembershipListener {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewMembershipListener(repo, publisher, "user-events", logger)
}

func seedUser(t *testing.T, repo *fakeUserRepository) user.User {
	t.Helper()
	u, err := repo.Create(context.Background(), user.User{
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		Status:   user.StatusActive,
		Role:     user.RoleUser,
	})
	require.NoError(t, err)
	return u
}

func TestMembershipListener_InvitationAccepted_AddsMembership(t *testing.T) {
	repo := newFakeUserRepository()
	publisher := &capturePublisher{}
	listener := newTestListener(repo, publisher)

	u := seedUser(t, repo)
	organizationID := uuid.NewString()
	actorID := uuid.NewString()

	evt := events.NewInvitationAccepted(uuid.NewString(), u.ID, organizationID, actorID)
	require.NoError(t, listener.HandleInvitationAccepted(context.Background(), evt))

	orgs, err := repo.Organizations(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{organizationID}, orgs)

	require.Len(t, publisher.published, 1)
	audit := publisher.published[0]
	assert.Equal(t, "user-events", audit.stream)
	assert.Equal(t, u.ID, audit.key)
	assert.Equal(t, events.TypeUserOrganizationAdded, audit.event.EventType)
	assert.Equal(t, organizationID, audit.event.OrganizationID)
	assert.Equal(t, actorID, audit.event.ActorID)
}

func TestMembershipListener_InvitationAccepted_RedeliveryIsIdempotent(t *testing.T) {
	repo := newFakeUserRepository()
	publisher := &capturePublisher{}
	listener := newTestListener(repo, publisher)

	u := seedUser(t, repo)
	evt := events.NewInvitationAccepted(uuid.NewString(), u.ID, uuid.NewString(), uuid.NewString())

	require.NoError(t, listener.HandleInvitationAccepted(context.Background(), evt))
	require.NoError(t, listener.HandleInvitationAccepted(context.Background(), evt))

	orgs, err := repo.Organizations(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Len(t, orgs, 1)
	assert.Len(t, publisher.published, 1, "the audit event fires only when the set changed")
}

func TestMembershipListener_InvitationAccepted_UnknownUserDropped(t *testing.T) {
	repo := newFakeUserRepository()
	publisher := &capturePublisher{}
	listener := newTestListener(repo, publisher)

	evt := events.NewInvitationAccepted(uuid.NewString(), uuid.NewString(), uuid.NewString(), uuid.NewString())
	err := listener.HandleInvitationAccepted(context.Background(), evt)

	assert.NoError(t, err, "an unknown user is logged and dropped, not retried")
	assert.Empty(t, publisher.published)
}

func TestMembershipListener_InvitationAccepted_MissingIDs(t *testing.T) {
	listener := newTestListener(newFakeUserRepository(), &capturePublisher{})

	evt := events.NewInvitationAccepted(uuid.NewString(), "", uuid.NewString(), uuid.NewString())
	assert.Error(t, listener.HandleInvitationAccepted(context.Background(), evt))
}

func TestMembershipListener_InvitationAccepted_AuditPublishFailureIgnored(t *testing.T) {
	repo := newFakeUserRepository()
	publisher := &capturePublisher{failWith: assert.AnError}
	listener := newTestListener(repo, publisher)

	u := seedUser(t, repo)
	evt := events.NewInvitationAccepted(uuid.NewString(), u.ID, uuid.NewString(), uuid.NewString())

	assert.NoError(t, listener.HandleInvitationAccepted(context.Background(), evt),
		"membership is committed even when the audit event cannot be published")

	orgs, err := repo.Organizations(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Len(t, orgs, 1)
}
