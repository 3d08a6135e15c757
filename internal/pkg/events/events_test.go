package events

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvitationCreated_Envelope(t *testing.T) {
	invitationID := uuid.NewString()
	userID := uuid.NewString()
	organizationID := uuid.NewString()
	actorID := uuid.NewString()

	evt := NewInvitationCreated(invitationID, userID, organizationID, "welcome", actorID)

	assert.NotEmpty(t, evt.EventID)
	assert.False(t, evt.Timestamp.IsZero())
	assert.Equal(t, TypeInvitationCreated, evt.EventType)

	payload, err := json.Marshal(evt)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	// Consumers in other services match on these exact keys.
	for _, key := range []string{"eventId", "timestamp", "eventType", "invitationId", "userId", "organizationId", "actorId", "message"} {
		assert.Contains(t, decoded, key)
	}
	assert.Equal(t, invitationID, decoded["invitationId"])
	assert.NotContains(t, decoded, "updatedFields", "empty optional fields stay off the wire")
}

func TestNewInvitationExpired_NoActor(t *testing.T) {
	evt := NewInvitationExpired(uuid.NewString(), uuid.NewString(), uuid.NewString())

	payload, err := json.Marshal(evt)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.NotContains(t, decoded, "actorId", "system sweeps carry no actor")
}

func TestNewUserUpdated_CarriesChangedFields(t *testing.T) {
	userID := uuid.NewString()
	evt := NewUserUpdated(userID, map[string]string{"fullName": "Jane Smith"}, uuid.NewString())

	assert.Equal(t, TypeUserUpdated, evt.EventType)
	assert.Equal(t, userID, evt.UserID)
	assert.Equal(t, "Jane Smith", evt.UpdatedFields["fullName"])
	assert.Empty(t, evt.InvitationID)
}

func TestEvent_EventIDsAreUnique(t *testing.T) {
	a := NewInvitationAccepted(uuid.NewString(), uuid.NewString(), uuid.NewString(), uuid.NewString())
	b := NewInvitationAccepted(uuid.NewString(), uuid.NewString(), uuid.NewString(), uuid.NewString())
	assert.NotEqual(t, a.EventID, b.EventID)
}
