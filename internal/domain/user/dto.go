package user

import (
	"github.com/digitopia/membership-backend-go/internal/pkg/validator"
)

// CreateRequest is the payload for registering a user
type CreateRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !r.Role.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be ADMIN, MANAGER or USER",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateRequest is the payload for updating a user. Nil fields are
// left untouched.
type UpdateRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Status   *Status `json:"status,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be blank",
		})
	}

	if r.Status != nil && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not a known value",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UserResponse is the outward representation of a user
type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	NormalizedName string `json:"normalized_name"`
	Status         Status `json:"status"`
	Role           Role   `json:"role"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}
