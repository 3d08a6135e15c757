package postgresql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	pendingPair := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "uq_invitations_pending_pair",
	}

	t.Run("matches named constraint", func(t *testing.T) {
		assert.True(t, isUniqueViolation(pendingPair, "uq_invitations_pending_pair"))
	})

	t.Run("matches any constraint when name is empty", func(t *testing.T) {
		assert.True(t, isUniqueViolation(pendingPair, ""))
		assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, ""))
	})

	t.Run("rejects other constraint names", func(t *testing.T) {
		assert.False(t, isUniqueViolation(pendingPair, "users_email_key"))
	})

	t.Run("rejects non-unique-violation codes", func(t *testing.T) {
		fk := &pgconn.PgError{Code: "23503", ConstraintName: "uq_invitations_pending_pair"}
		assert.False(t, isUniqueViolation(fk, "uq_invitations_pending_pair"))
		assert.False(t, isUniqueViolation(fk, ""))
	})

	t.Run("sees through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to create invitation: %w", pendingPair)
		assert.True(t, isUniqueViolation(wrapped, "uq_invitations_pending_pair"))
	})

	t.Run("rejects non-postgres errors", func(t *testing.T) {
		assert.False(t, isUniqueViolation(errors.New("connection reset"), ""))
		assert.False(t, isUniqueViolation(nil, ""))
	})
}
