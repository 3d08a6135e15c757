package organization

import "context"

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	// Create inserts a new organization, ErrRegistryNumberExists on a
	// duplicate registry number
	Create(ctx context.Context, org Organization) (Organization, error)

	// GetByID retrieves an organization by id
	GetByID(ctx context.Context, id string) (Organization, error)

	// Update persists name, contact and audit fields
	Update(ctx context.Context, org Organization) (Organization, error)

	// SearchByNormalizedName lists organizations whose normalized name
	// contains the given fragment, newest first
	SearchByNormalizedName(ctx context.Context, name string, limit, offset int) ([]Organization, error)
}
