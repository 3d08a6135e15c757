package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/digitopia/membership-backend-go/internal/domain/invitation"
	"github.com/digitopia/membership-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const invitationColumns = `id, user_id, organization_id, message, status, created_by, updated_by, created_at, updated_at`

type invitationRepositoryImpl struct {
	db *database.DB
}

// NewInvitationRepository creates a new invitation repository instance
func NewInvitationRepository(db *database.DB) invitation.InvitationRepository {
	return &invitationRepositoryImpl{db: db}
}

func scanInvitation(row pgx.Row) (invitation.Invitation, error) {
	var inv invitation.Invitation
	err := row.Scan(
		&inv.ID, &inv.UserID, &inv.OrganizationID, &inv.Message, &inv.Status,
		&inv.CreatedBy, &inv.UpdatedBy, &inv.CreatedAt, &inv.UpdatedAt,
	)
	return inv, err
}

// Create implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) Create(ctx context.Context, inv invitation.Invitation) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invitations (
			user_id, organization_id, message, status, created_by, updated_by
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + invitationColumns

	created, err := scanInvitation(q.QueryRow(ctx, query,
		inv.UserID, inv.OrganizationID, inv.Message, inv.Status,
		inv.CreatedBy, inv.UpdatedBy,
	))
	if err != nil {
		// uq_invitations_pending_pair is the partial unique index on
		// (user_id, organization_id) WHERE status = 'PENDING'. It closes
		// the check-then-insert race window.
		if isUniqueViolation(err, "uq_invitations_pending_pair") {
			return invitation.Invitation{}, invitation.ErrPendingInvitationExists
		}
		return invitation.Invitation{}, fmt.Errorf("failed to create invitation: %w", err)
	}

	return created, nil
}

// GetByID implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) GetByID(ctx context.Context, id string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE id = $1`

	inv, err := scanInvitation(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return invitation.Invitation{}, invitation.ErrInvitationNotFound
		}
		return invitation.Invitation{}, fmt.Errorf("failed to get invitation: %w", err)
	}

	return inv, nil
}

// LatestForPair implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) LatestForPair(ctx context.Context, userID, organizationID string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE user_id = $1 AND organization_id = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	inv, err := scanInvitation(q.QueryRow(ctx, query, userID, organizationID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return invitation.Invitation{}, invitation.ErrInvitationNotFound
		}
		return invitation.Invitation{}, fmt.Errorf("failed to get latest invitation for pair: %w", err)
	}

	return inv, nil
}

func (r *invitationRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []invitation.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}

// ListByUser implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]invitation.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

// ListByOrganization implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]invitation.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE organization_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, organizationID)
}

// ListStalePending implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) ListStalePending(ctx context.Context, before time.Time) ([]invitation.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE status = 'PENDING' AND created_at < $1`
	return r.list(ctx, query, before)
}

// UpdateStatusIfPending implements invitation.InvitationRepository.
// The WHERE clause makes the write conditional on the row still being
// PENDING, so a concurrent accept/reject and the expiry sweep cannot
// both win.
func (r *invitationRepositoryImpl) UpdateStatusIfPending(ctx context.Context, id string, status invitation.Status, updatedBy string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invitations
		SET status = $2, updated_by = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
		RETURNING ` + invitationColumns

	inv, err := scanInvitation(q.QueryRow(ctx, query, id, status, updatedBy))
	if err != nil {
		if err == pgx.ErrNoRows {
			// Either the invitation does not exist or it already reached
			// a terminal status; look again to tell the two apart.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return invitation.Invitation{}, getErr
			}
			return invitation.Invitation{}, invitation.ErrInvalidTransition
		}
		return invitation.Invitation{}, fmt.Errorf("failed to update invitation status: %w", err)
	}

	return inv, nil
}

// Delete implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM invitations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return invitation.ErrInvitationNotFound
	}

	return nil
}
