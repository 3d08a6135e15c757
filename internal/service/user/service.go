package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/digitopia/membership-backend-go/internal/domain/user"
	"github.com/digitopia/membership-backend-go/internal/pkg/events"
	"github.com/digitopia/membership-backend-go/internal/pkg/sanitize"
)

type UserServiceImpl struct {
	user.UserRepository
	publisher events.Publisher
	topic     string
}

func NewUserService(userRepository user.UserRepository, publisher events.Publisher, topic string) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
		publisher:      publisher,
		topic:          topic,
	}
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateRequest, actorID string) (user.UserResponse, error) {
	// Normalize before validating so "  Jane@Example.COM " passes the
	// format check the same way its stored form would.
	email := sanitize.Email(req.Email)
	req.Email = email
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if _, err := s.GetByEmail(ctx, email); err == nil {
		return user.UserResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.UserResponse{}, fmt.Errorf("failed to check existing email: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Email:          email,
		FullName:       req.FullName,
		NormalizedName: sanitize.NormalizeName(req.FullName),
		Status:         user.InitialStatus(req.Role),
		Role:           req.Role,
		CreatedBy:      actorID,
		UpdatedBy:      actorID,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	s.publish(ctx, created.ID, events.NewUserCreated(
		created.ID, created.Email, created.FullName, string(created.Role), actorID,
	))

	return toResponse(created), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, id string, req user.UpdateRequest, actorID string) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	existing, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	updatedFields := make(map[string]string)

	if req.FullName != nil && *req.FullName != existing.FullName {
		existing.FullName = *req.FullName
		existing.NormalizedName = sanitize.NormalizeName(*req.FullName)
		updatedFields["fullName"] = existing.FullName
		updatedFields["normalizedName"] = existing.NormalizedName
	}

	if req.Status != nil && *req.Status != existing.Status {
		existing.Status = *req.Status
		updatedFields["status"] = string(existing.Status)
	}

	if len(updatedFields) == 0 {
		return toResponse(existing), nil
	}

	existing.UpdatedBy = actorID
	updated, err := s.UserRepository.Update(ctx, existing)
	if err != nil {
		return user.UserResponse{}, err
	}

	s.publish(ctx, updated.ID, events.NewUserUpdated(updated.ID, updatedFields, actorID))

	return toResponse(updated), nil
}

// GetByID implements user.UserService.
func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return toResponse(u), nil
}

// GetByEmail implements user.UserService.
func (s *UserServiceImpl) GetByEmail(ctx context.Context, email string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByEmail(ctx, sanitize.Email(email))
	if err != nil {
		return user.UserResponse{}, err
	}
	return toResponse(u), nil
}

// SearchByName implements user.UserService.
func (s *UserServiceImpl) SearchByName(ctx context.Context, name string, limit, offset int) ([]user.UserResponse, error) {
	users, err := s.SearchByNormalizedName(ctx, sanitize.NormalizeName(name), limit, offset)
	if err != nil {
		return nil, err
	}
	return toResponses(users), nil
}

// ListByOrganization implements user.UserService.
func (s *UserServiceImpl) ListByOrganization(ctx context.Context, organizationID string) ([]user.UserResponse, error) {
	users, err := s.UserRepository.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	return toResponses(users), nil
}

// Organizations implements user.UserService.
func (s *UserServiceImpl) Organizations(ctx context.Context, userID string) ([]string, error) {
	if _, err := s.UserRepository.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.UserRepository.Organizations(ctx, userID)
}

func (s *UserServiceImpl) publish(ctx context.Context, key string, evt events.Event) {
	if err := s.publisher.Publish(ctx, s.topic, key, evt); err != nil {
		slog.Error("Failed to publish user event",
			"event_type", evt.EventType,
			"user_id", evt.UserID,
			"error", err,
		)
	}
}

func toResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		NormalizedName: u.NormalizedName,
		Status:         u.Status,
		Role:           u.Role,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      u.UpdatedAt.Format(time.RFC3339),
	}
}

func toResponses(users []user.User) []user.UserResponse {
	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toResponse(u))
	}
	return responses
}
