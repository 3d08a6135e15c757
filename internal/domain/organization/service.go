package organization

import "context"

// OrganizationService defines the interface for organization business logic
type OrganizationService interface {
	// Create registers an organization
	Create(ctx context.Context, req CreateRequest, actorID string) (OrganizationResponse, error)

	// Update changes mutable organization fields
	Update(ctx context.Context, id string, req UpdateRequest, actorID string) (OrganizationResponse, error)

	// GetByID retrieves an organization by id
	GetByID(ctx context.Context, id string) (OrganizationResponse, error)

	// SearchByName searches organizations by normalized name
	SearchByName(ctx context.Context, name string, limit, offset int) ([]OrganizationResponse, error)
}
