package user

import "context"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user, ErrEmailExists on a duplicate email
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (User, error)

	// Update persists full name, normalized name, status and audit fields
	Update(ctx context.Context, u User) (User, error)

	// SearchByNormalizedName lists users whose normalized name contains
	// the given fragment, newest first
	SearchByNormalizedName(ctx context.Context, name string, limit, offset int) ([]User, error)

	// ListByOrganization lists users that belong to an organization
	ListByOrganization(ctx context.Context, organizationID string) ([]User, error)

	// Organizations returns the set of organization ids a user belongs to
	Organizations(ctx context.Context, userID string) ([]string, error)

	// AddOrganization adds organizationID to the user's membership set.
	// The insert is a set union: it reports true only when the pair was
	// not already present, so redelivered events are no-ops.
	AddOrganization(ctx context.Context, userID, organizationID, updatedBy string) (bool, error)
}
