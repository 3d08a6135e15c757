package invitation

import (
	"github.com/digitopia/membership-backend-go/internal/pkg/validator"
)

// CreateRequest is the payload for creating an invitation
type CreateRequest struct {
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
	Message        string `json:"message"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	} else if !validator.IsValidUUID(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid uuid",
		})
	}

	if validator.IsEmpty(r.OrganizationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "organization_id",
			Message: "organization_id is required",
		})
	} else if !validator.IsValidUUID(r.OrganizationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "organization_id",
			Message: "organization_id must be a valid uuid",
		})
	}

	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateStatusRequest is the payload for an explicit status change.
// Only ACCEPTED and REJECTED are reachable through this path; EXPIRED
// is produced by the sweeper alone.
type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(string(r.Status), []string{string(StatusAccepted), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be ACCEPTED or REJECTED",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// InvitationResponse is the outward representation of an invitation
type InvitationResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
	Message        string `json:"message"`
	Status         Status `json:"status"`
	CreatedBy      string `json:"created_by"`
	UpdatedBy      string `json:"updated_by"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}
