package user

import "context"

// UserService defines the interface for user business logic
type UserService interface {
	// Create registers a user. Administrators start ACTIVE, everyone
	// else PENDING. Emits a UserCreated event.
	Create(ctx context.Context, req CreateRequest, actorID string) (UserResponse, error)

	// Update changes full name and/or status; emits a UserUpdated event
	// only when something actually changed
	Update(ctx context.Context, id string, req UpdateRequest, actorID string) (UserResponse, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id string) (UserResponse, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (UserResponse, error)

	// SearchByName searches users by normalized full name
	SearchByName(ctx context.Context, name string, limit, offset int) ([]UserResponse, error)

	// ListByOrganization lists the members of an organization
	ListByOrganization(ctx context.Context, organizationID string) ([]UserResponse, error)

	// Organizations returns the ids of the organizations a user belongs to
	Organizations(ctx context.Context, userID string) ([]string, error)
}
