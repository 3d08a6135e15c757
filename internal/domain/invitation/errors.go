package invitation

import "errors"

var (
	ErrInvitationNotFound      = errors.New("invitation not found")
	ErrPendingInvitationExists = errors.New("a pending invitation already exists for this user and organization")
	ErrLastInvitationRejected  = errors.New("cannot reinvite: last invitation was rejected")
	ErrInvalidTransition       = errors.New("invitation status can no longer be changed")
)
