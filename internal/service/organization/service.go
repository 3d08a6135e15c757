package organization

import (
	"context"
	"time"

	"github.com/digitopia/membership-backend-go/internal/domain/organization"
	"github.com/digitopia/membership-backend-go/internal/pkg/sanitize"
)

type OrganizationServiceImpl struct {
	organization.OrganizationRepository
}

func NewOrganizationService(organizationRepository organization.OrganizationRepository) organization.OrganizationService {
	return &OrganizationServiceImpl{
		OrganizationRepository: organizationRepository,
	}
}

// Create implements organization.OrganizationService.
func (s *OrganizationServiceImpl) Create(ctx context.Context, req organization.CreateRequest, actorID string) (organization.OrganizationResponse, error) {
	// Normalize the email first so the format check sees the stored form.
	req.ContactEmail = sanitize.Email(req.ContactEmail)
	if err := req.Validate(); err != nil {
		return organization.OrganizationResponse{}, err
	}

	name := sanitize.Text(req.Name)
	created, err := s.OrganizationRepository.Create(ctx, organization.Organization{
		Name:           name,
		NormalizedName: sanitize.NormalizeName(name),
		RegistryNumber: req.RegistryNumber,
		ContactEmail:   req.ContactEmail,
		CompanySize:    req.CompanySize,
		YearFounded:    req.YearFounded,
		CreatedBy:      actorID,
		UpdatedBy:      actorID,
	})
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	return toResponse(created), nil
}

// Update implements organization.OrganizationService.
func (s *OrganizationServiceImpl) Update(ctx context.Context, id string, req organization.UpdateRequest, actorID string) (organization.OrganizationResponse, error) {
	if req.ContactEmail != nil {
		email := sanitize.Email(*req.ContactEmail)
		req.ContactEmail = &email
	}
	if err := req.Validate(); err != nil {
		return organization.OrganizationResponse{}, err
	}

	existing, err := s.OrganizationRepository.GetByID(ctx, id)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	if req.Name != nil {
		existing.Name = sanitize.Text(*req.Name)
		existing.NormalizedName = sanitize.NormalizeName(existing.Name)
	}
	if req.ContactEmail != nil {
		existing.ContactEmail = *req.ContactEmail
	}
	if req.CompanySize != nil {
		existing.CompanySize = *req.CompanySize
	}
	existing.UpdatedBy = actorID

	updated, err := s.OrganizationRepository.Update(ctx, existing)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	return toResponse(updated), nil
}

// GetByID implements organization.OrganizationService.
func (s *OrganizationServiceImpl) GetByID(ctx context.Context, id string) (organization.OrganizationResponse, error) {
	org, err := s.OrganizationRepository.GetByID(ctx, id)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}
	return toResponse(org), nil
}

// SearchByName implements organization.OrganizationService.
func (s *OrganizationServiceImpl) SearchByName(ctx context.Context, name string, limit, offset int) ([]organization.OrganizationResponse, error) {
	orgs, err := s.SearchByNormalizedName(ctx, sanitize.NormalizeName(name), limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]organization.OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		responses = append(responses, toResponse(org))
	}
	return responses, nil
}

func toResponse(org organization.Organization) organization.OrganizationResponse {
	return organization.OrganizationResponse{
		ID:             org.ID,
		Name:           org.Name,
		NormalizedName: org.NormalizedName,
		RegistryNumber: org.RegistryNumber,
		ContactEmail:   org.ContactEmail,
		CompanySize:    org.CompanySize,
		YearFounded:    org.YearFounded,
		CreatedAt:      org.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      org.UpdatedAt.Format(time.RFC3339),
	}
}
