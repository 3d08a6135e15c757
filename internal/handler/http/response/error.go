package response

import (
	"errors"
	"net/http"

	"github.com/digitopia/membership-backend-go/internal/domain/invitation"
	"github.com/digitopia/membership-backend-go/internal/domain/organization"
	"github.com/digitopia/membership-backend-go/internal/domain/user"
	"github.com/digitopia/membership-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Invitation domain errors
	case errors.Is(err, invitation.ErrInvitationNotFound):
		NotFound(w, "Invitation not found")
	case errors.Is(err, invitation.ErrPendingInvitationExists):
		Conflict(w, "A pending invitation already exists for this user and organization")
	case errors.Is(err, invitation.ErrLastInvitationRejected):
		Conflict(w, "Cannot reinvite: last invitation was rejected")
	case errors.Is(err, invitation.ErrInvalidTransition):
		Conflict(w, "Invitation status can no longer be changed")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrPermissionDenied):
		Forbidden(w, "Insufficient permissions")

	// Organization domain errors
	case errors.Is(err, organization.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")
	case errors.Is(err, organization.ErrRegistryNumberExists):
		Conflict(w, "Registry number already registered")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
