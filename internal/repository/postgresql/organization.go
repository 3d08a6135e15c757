package postgresql

import (
	"context"
	"fmt"

	"github.com/digitopia/membership-backend-go/internal/domain/organization"
	"github.com/digitopia/membership-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const organizationColumns = `id, name, normalized_name, registry_number, contact_email, company_size, year_founded, created_by, updated_by, created_at, updated_at`

type organizationRepositoryImpl struct {
	db *database.DB
}

// NewOrganizationRepository creates a new organization repository instance
func NewOrganizationRepository(db *database.DB) organization.OrganizationRepository {
	return &organizationRepositoryImpl{db: db}
}

func scanOrganization(row pgx.Row) (organization.Organization, error) {
	var org organization.Organization
	err := row.Scan(
		&org.ID, &org.Name, &org.NormalizedName, &org.RegistryNumber, &org.ContactEmail,
		&org.CompanySize, &org.YearFounded, &org.CreatedBy, &org.UpdatedBy,
		&org.CreatedAt, &org.UpdatedAt,
	)
	return org, err
}

// Create implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) Create(ctx context.Context, org organization.Organization) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO organizations (
			name, normalized_name, registry_number, contact_email, company_size, year_founded, created_by, updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + organizationColumns

	created, err := scanOrganization(q.QueryRow(ctx, query,
		org.Name, org.NormalizedName, org.RegistryNumber, org.ContactEmail,
		org.CompanySize, org.YearFounded, org.CreatedBy, org.UpdatedBy,
	))
	if err != nil {
		if isUniqueViolation(err, "") {
			return organization.Organization{}, organization.ErrRegistryNumberExists
		}
		return organization.Organization{}, fmt.Errorf("failed to create organization: %w", err)
	}

	return created, nil
}

// GetByID implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	org, err := scanOrganization(q.QueryRow(ctx, `SELECT `+organizationColumns+` FROM organizations WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, fmt.Errorf("failed to get organization: %w", err)
	}

	return org, nil
}

// Update implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) Update(ctx context.Context, org organization.Organization) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE organizations
		SET name = $2, normalized_name = $3, contact_email = $4, company_size = $5, updated_by = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + organizationColumns

	updated, err := scanOrganization(q.QueryRow(ctx, query,
		org.ID, org.Name, org.NormalizedName, org.ContactEmail, org.CompanySize, org.UpdatedBy,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, fmt.Errorf("failed to update organization: %w", err)
	}

	return updated, nil
}

// SearchByNormalizedName implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) SearchByNormalizedName(ctx context.Context, name string, limit, offset int) ([]organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + organizationColumns + `
		FROM organizations
		WHERE normalized_name LIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, name, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search organizations: %w", err)
	}
	defer rows.Close()

	var orgs []organization.Organization
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, org)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return orgs, nil
}
