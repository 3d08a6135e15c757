package organization

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitopia/membership-backend-go/internal/domain/organization"
)

type fakeOrganizationRepository struct {
	orgs map[string]organization.Organization
}

func newFakeOrganizationRepository() *fakeOrganizationRepository {
	return &fakeOrganizationRepository{orgs: make(map[string]organization.Organization)}
}

func (f *fakeOrganizationRepository) Create(_ context.Context, org organization.Organization) (organization.Organization, error) {
	for _, existing := range f.orgs {
		if existing.RegistryNumber == org.RegistryNumber {
			return organization.Organization{}, organization.ErrRegistryNumberExists
		}
	}
	org.ID = uuid.NewString()
	f.orgs[org.ID] = org
	return org, nil
}

func (f *fakeOrganizationRepository) GetByID(_ context.Context, id string) (organization.Organization, error) {
	org, ok := f.orgs[id]
	if !ok {
		return organization.Organization{}, organization.ErrOrganizationNotFound
	}
	return org, nil
}

func (f *fakeOrganizationRepository) Update(_ context.Context, org organization.Organization) (organization.Organization, error) {
	if _, ok := f.orgs[org.ID]; !ok {
		return organization.Organization{}, organization.ErrOrganizationNotFound
	}
	f.orgs[org.ID] = org
	return org, nil
}

func (f *fakeOrganizationRepository) SearchByNormalizedName(_ context.Context, name string, limit, offset int) ([]organization.Organization, error) {
	var out []organization.Organization
	for _, org := range f.orgs {
		if name == "" || org.NormalizedName == name {
			out = append(out, org)
		}
	}
	return out, nil
}

func TestOrganizationService_Create_SanitizesName(t *testing.T) {
	service := NewOrganizationService(newFakeOrganizationRepository())

	resp, err := service.Create(context.Background(), organization.CreateRequest{
		Name:           "<b>Acme</b>  Corp",
		RegistryNumber: "REG-001",
		ContactEmail:   "Contact@Acme.COM",
		CompanySize:    50,
		YearFounded:    2010,
	}, uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", resp.Name)
	assert.Equal(t, "acme-corp", resp.NormalizedName)
	assert.Equal(t, "contact@acme.com", resp.ContactEmail)
}

func TestOrganizationService_Create_DuplicateRegistryNumber(t *testing.T) {
	repo := newFakeOrganizationRepository()
	service := NewOrganizationService(repo)

	req := organization.CreateRequest{
		Name:           "Acme Corp",
		RegistryNumber: "REG-001",
		ContactEmail:   "contact@acme.com",
	}
	_, err := service.Create(context.Background(), req, uuid.NewString())
	require.NoError(t, err)

	req.Name = "Acme Clone"
	_, err = service.Create(context.Background(), req, uuid.NewString())
	assert.ErrorIs(t, err, organization.ErrRegistryNumberExists)
}

func TestOrganizationService_Update_PartialFields(t *testing.T) {
	repo := newFakeOrganizationRepository()
	service := NewOrganizationService(repo)

	resp, err := service.Create(context.Background(), organization.CreateRequest{
		Name:           "Acme Corp",
		RegistryNumber: "REG-001",
		ContactEmail:   "contact@acme.com",
		CompanySize:    50,
	}, uuid.NewString())
	require.NoError(t, err)

	size := 120
	updated, err := service.Update(context.Background(), resp.ID, organization.UpdateRequest{
		CompanySize: &size,
	}, uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, 120, updated.CompanySize)
	assert.Equal(t, "Acme Corp", updated.Name, "untouched fields stay as they were")
	assert.Equal(t, "REG-001", updated.RegistryNumber, "registry number is immutable")
}

func TestOrganizationService_GetByID_NotFound(t *testing.T) {
	service := NewOrganizationService(newFakeOrganizationRepository())

	_, err := service.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, organization.ErrOrganizationNotFound)
}
