package postgresql

import (
	"context"
	"fmt"

	"github.com/digitopia/membership-backend-go/internal/domain/user"
	"github.com/digitopia/membership-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, full_name, normalized_name, status, role, created_by, updated_by, created_at, updated_at`

type userRepositoryImpl struct {
	db *database.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Email, &u.FullName, &u.NormalizedName, &u.Status, &u.Role,
		&u.CreatedBy, &u.UpdatedBy, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			email, full_name, normalized_name, status, role, created_by, updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		u.Email, u.FullName, u.NormalizedName, u.Status, u.Role, u.CreatedBy, u.UpdatedBy,
	))
	if err != nil {
		if isUniqueViolation(err, "") {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET full_name = $2, normalized_name = $3, status = $4, updated_by = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	updated, err := scanUser(q.QueryRow(ctx, query,
		u.ID, u.FullName, u.NormalizedName, u.Status, u.UpdatedBy,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}

func (r *userRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

// SearchByNormalizedName implements user.UserRepository.
func (r *userRepositoryImpl) SearchByNormalizedName(ctx context.Context, name string, limit, offset int) ([]user.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE normalized_name LIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, name, limit, offset)
}

// ListByOrganization implements user.UserRepository.
func (r *userRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]user.User, error) {
	query := `
		SELECT ` + qualifiedUserColumns() + `
		FROM users u
		JOIN user_organizations uo ON uo.user_id = u.id
		WHERE uo.organization_id = $1
		ORDER BY u.created_at DESC
	`
	return r.list(ctx, query, organizationID)
}

func qualifiedUserColumns() string {
	return `u.id, u.email, u.full_name, u.normalized_name, u.status, u.role, u.created_by, u.updated_by, u.created_at, u.updated_at`
}

// Organizations implements user.UserRepository.
func (r *userRepositoryImpl) Organizations(ctx context.Context, userID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT organization_id FROM user_organizations WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user organizations: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan organization id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

// AddOrganization implements user.UserRepository. ON CONFLICT DO NOTHING
// makes the membership insert a set union, so redelivered events change
// nothing after the first application. The insert and the audit-field
// touch commit together.
func (r *userRepositoryImpl) AddOrganization(ctx context.Context, userID, organizationID, updatedBy string) (bool, error) {
	changed := false

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		q := GetQuerier(txCtx, r.db)

		tag, err := q.Exec(txCtx, `
			INSERT INTO user_organizations (user_id, organization_id)
			VALUES ($1, $2)
			ON CONFLICT (user_id, organization_id) DO NOTHING
		`, userID, organizationID)
		if err != nil {
			return fmt.Errorf("failed to add organization to user: %w", err)
		}

		if tag.RowsAffected() == 0 {
			return nil
		}

		if _, err := q.Exec(txCtx, `UPDATE users SET updated_by = $2, updated_at = NOW() WHERE id = $1`, userID, updatedBy); err != nil {
			return fmt.Errorf("failed to touch user audit fields: %w", err)
		}

		changed = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return changed, nil
}
