package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitopia/membership-backend-go/internal/domain/user"
	"github.com/digitopia/membership-backend-go/internal/pkg/events"
)

// fakeUserRepository keeps users and their membership sets in memory,
// mirroring the postgresql repository's contract.
type fakeUserRepository struct {
	users       map[string]user.User
	memberships map[string]map[string]bool
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users:       make(map[string]user.User),
		memberships: make(map[string]map[string]bool),
	}
}

func (f *fakeUserRepository) Create(_ context.Context, u user.User) (user.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrEmailExists
		}
	}
	u.ID = uuid.NewString()
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepository) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepository) Update(_ context.Context, u user.User) (user.User, error) {
	if _, ok := f.users[u.ID]; !ok {
		return user.User{}, user.ErrUserNotFound
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepository) SearchByNormalizedName(_ context.Context, name string, limit, offset int) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if name == "" || u.NormalizedName == name {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepository) ListByOrganization(_ context.Context, organizationID string) ([]user.User, error) {
	var out []user.User
	for id, orgs := range f.memberships {
		if orgs[organizationID] {
			out = append(out, f.users[id])
		}
	}
	return out, nil
}

func (f *fakeUserRepository) Organizations(_ context.Context, userID string) ([]string, error) {
	var out []string
	for org := range f.memberships[userID] {
		out = append(out, org)
	}
	return out, nil
}

func (f *fakeUserRepository) AddOrganization(_ context.Context, userID, organizationID, updatedBy string) (bool, error) {
	if _, ok := f.users[userID]; !ok {
		return false, user.ErrUserNotFound
	}
	if f.memberships[userID] == nil {
		f.memberships[userID] = make(map[string]bool)
	}
	if f.memberships[userID][organizationID] {
		return false, nil
	}
	f.memberships[userID][organizationID] = true
	u := f.users[userID]
	u.UpdatedBy = updatedBy
	f.users[userID] = u
	return true, nil
}

type publishedEvent struct {
	stream string
	key    string
	event  events.Event
}

type capturePublisher struct {
	published []publishedEvent
	failWith  error
}

func (p *capturePublisher) Publish(_ context.Context, stream, key string, evt events.Event) error {
	if p.failWith != nil {
		return p.failWith
	}
	p.published = append(p.published, publishedEvent{stream: stream, key: key, event: evt})
	return nil
}

func TestUserService_Create_Success(t *testing.T) {
	repo := newFakeUserRepository()
	publisher := &capturePublisher{}
	service := NewUserService(repo, publisher, "user-events")

	resp, err := service.Create(context.Background(), user.CreateRequest{
		Email:    "  Jane.Doe@Example.COM ",
		FullName: "Jane  Doe",
		Role:     user.RoleUser,
	}, uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, "jane.doe@example.com", resp.Email)
	assert.Equal(t, "jane-doe", resp.NormalizedName)
	assert.Equal(t, user.StatusPending, resp.Status, "regular users start onboarding")

	require.Len(t, publisher.published, 1)
	assert.Equal(t, events.TypeUserCreated, publisher.published[0].event.EventType)
	assert.Equal(t, resp.ID, publisher.published[0].key, "user events are keyed by user id")
}

func TestUserService_Create_InvalidEmailRejected(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, &capturePublisher{}, "user-events")

	// Trimming and lowercasing cannot turn a malformed address into a
	// valid one, so validation still fires on the normalized form.
	_, err := service.Create(context.Background(), user.CreateRequest{
		Email:    "  not-an-email ",
		FullName: "Jane Doe",
		Role:     user.RoleUser,
	}, uuid.NewString())
	require.Error(t, err)
	assert.Empty(t, repo.users)
}

func TestUserService_Create_AdminStartsActive(t *testing.T) {
	service := NewUserService(newFakeUserRepository(), &capturePublisher{}, "user-events")

	resp, err := service.Create(context.Background(), user.CreateRequest{
		Email:    "root@example.com",
		FullName: "Root Admin",
		Role:     user.RoleAdmin,
	}, uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, user.StatusActive, resp.Status)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	publisher := &capturePublisher{}
	service := NewUserService(repo, publisher, "user-events")

	_, err := service.Create(context.Background(), user.CreateRequest{
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		Role:     user.RoleUser,
	}, uuid.NewString())
	require.NoError(t, err)

	// Same address with different casing collides after normalization.
	_, err = service.Create(context.Background(), user.CreateRequest{
		Email:    "JANE@example.com",
		FullName: "Jane Again",
		Role:     user.RoleUser,
	}, uuid.NewString())
	assert.ErrorIs(t, err, user.ErrEmailExists)
	assert.Len(t, publisher.published, 1)
}

func TestUserService_Update_PublishesChangedFields(t *testing.T) {
	repo := newFakeUserRepository()
	publisher := &capturePublisher{}
	service := NewUserService(repo, publisher, "user-events")

	resp, err := service.Create(context.Background(), user.CreateRequest{
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		Role:     user.RoleUser,
	}, uuid.NewString())
	require.NoError(t, err)

	newName := "Jane Smith"
	active := user.StatusActive
	updated, err := service.Update(context.Background(), resp.ID, user.UpdateRequest{
		FullName: &newName,
		Status:   &active,
	}, uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, "jane-smith", updated.NormalizedName)

	require.Len(t, publisher.published, 2)
	evt := publisher.published[1].event
	assert.Equal(t, events.TypeUserUpdated, evt.EventType)
	assert.Equal(t, "Jane Smith", evt.UpdatedFields["fullName"])
	assert.Equal(t, "ACTIVE", evt.UpdatedFields["status"])
}

func TestUserService_Update_NoChangeNoEvent(t *testing.T) {
	repo := newFakeUserRepository()
	publisher := &capturePublisher{}
	service := NewUserService(repo, publisher, "user-events")

	resp, err := service.Create(context.Background(), user.CreateRequest{
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		Role:     user.RoleUser,
	}, uuid.NewString())
	require.NoError(t, err)

	sameName := "Jane Doe"
	_, err = service.Update(context.Background(), resp.ID, user.UpdateRequest{
		FullName: &sameName,
	}, uuid.NewString())
	require.NoError(t, err)

	assert.Len(t, publisher.published, 1, "an update that changes nothing emits nothing")
}

func TestUserService_Organizations_UnknownUser(t *testing.T) {
	service := NewUserService(newFakeUserRepository(), &capturePublisher{}, "user-events")

	_, err := service.Organizations(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
