package events

import (
	"time"

	"github.com/google/uuid"
)

// Event types carried on the invitation and user streams.
const (
	TypeInvitationCreated     = "InvitationCreated"
	TypeInvitationAccepted    = "InvitationAccepted"
	TypeInvitationRejected    = "InvitationRejected"
	TypeInvitationExpired     = "InvitationExpired"
	TypeUserCreated           = "UserCreated"
	TypeUserUpdated           = "UserUpdated"
	TypeUserOrganizationAdded = "UserOrganizationAdded"
)

// Event is the wire envelope for every domain event. Events are facts
// about a committed state transition and are published only after the
// transition is durably persisted.
type Event struct {
	EventID        string            `json:"eventId"`
	Timestamp      time.Time         `json:"timestamp"`
	EventType      string            `json:"eventType"`
	InvitationID   string            `json:"invitationId,omitempty"`
	UserID         string            `json:"userId"`
	OrganizationID string            `json:"organizationId,omitempty"`
	ActorID        string            `json:"actorId,omitempty"`
	Message        string            `json:"message,omitempty"`
	UpdatedFields  map[string]string `json:"updatedFields,omitempty"`
}

func newEvent(eventType string) Event {
	return Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().UTC(),
		EventType: eventType,
	}
}

func NewInvitationCreated(invitationID, userID, organizationID, message, actorID string) Event {
	evt := newEvent(TypeInvitationCreated)
	evt.InvitationID = invitationID
	evt.UserID = userID
	evt.OrganizationID = organizationID
	evt.Message = message
	evt.ActorID = actorID
	return evt
}

func NewInvitationAccepted(invitationID, userID, organizationID, actorID string) Event {
	evt := newEvent(TypeInvitationAccepted)
	evt.InvitationID = invitationID
	evt.UserID = userID
	evt.OrganizationID = organizationID
	evt.ActorID = actorID
	return evt
}

func NewInvitationRejected(invitationID, userID, organizationID, actorID string) Event {
	evt := newEvent(TypeInvitationRejected)
	evt.InvitationID = invitationID
	evt.UserID = userID
	evt.OrganizationID = organizationID
	evt.ActorID = actorID
	return evt
}

func NewInvitationExpired(invitationID, userID, organizationID string) Event {
	evt := newEvent(TypeInvitationExpired)
	evt.InvitationID = invitationID
	evt.UserID = userID
	evt.OrganizationID = organizationID
	return evt
}

func NewUserCreated(userID, email, fullName, role, actorID string) Event {
	evt := newEvent(TypeUserCreated)
	evt.UserID = userID
	evt.ActorID = actorID
	evt.UpdatedFields = map[string]string{
		"email":    email,
		"fullName": fullName,
		"role":     role,
	}
	return evt
}

func NewUserUpdated(userID string, updatedFields map[string]string, actorID string) Event {
	evt := newEvent(TypeUserUpdated)
	evt.UserID = userID
	evt.ActorID = actorID
	evt.UpdatedFields = updatedFields
	return evt
}

func NewUserOrganizationAdded(userID, organizationID, actorID string) Event {
	evt := newEvent(TypeUserOrganizationAdded)
	evt.UserID = userID
	evt.OrganizationID = organizationID
	evt.ActorID = actorID
	return evt
}
