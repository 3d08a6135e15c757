package organization

import (
	"github.com/digitopia/membership-backend-go/internal/pkg/validator"
)

// CreateRequest is the payload for registering an organization
type CreateRequest struct {
	Name           string `json:"name"`
	RegistryNumber string `json:"registry_number"`
	ContactEmail   string `json:"contact_email"`
	CompanySize    int    `json:"company_size"`
	YearFounded    int    `json:"year_founded"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.RegistryNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "registry_number",
			Message: "registry_number is required",
		})
	}

	if validator.IsEmpty(r.ContactEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact_email",
			Message: "contact_email is required",
		})
	} else if !validator.IsValidEmail(r.ContactEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact_email",
			Message: "contact_email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateRequest is the payload for updating an organization. Nil fields
// are left untouched.
type UpdateRequest struct {
	Name         *string `json:"name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	CompanySize  *int    `json:"company_size,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be blank",
		})
	}

	if r.ContactEmail != nil && !validator.IsValidEmail(*r.ContactEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact_email",
			Message: "contact_email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// OrganizationResponse is the outward representation of an organization
type OrganizationResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	NormalizedName string `json:"normalized_name"`
	RegistryNumber string `json:"registry_number"`
	ContactEmail   string `json:"contact_email"`
	CompanySize    int    `json:"company_size"`
	YearFounded    int    `json:"year_founded"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}
