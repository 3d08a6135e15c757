package invitation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusAccepted.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusExpired.Terminal())
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.False(t, Status("CANCELLED").Valid())
}

func TestInvitation_ExpiryEligible(t *testing.T) {
	now := time.Now().UTC()
	retention := 7 * 24 * time.Hour

	stale := Invitation{Status: StatusPending, CreatedAt: now.Add(-8 * 24 * time.Hour)}
	fresh := Invitation{Status: StatusPending, CreatedAt: now.Add(-time.Hour)}
	accepted := Invitation{Status: StatusAccepted, CreatedAt: now.Add(-8 * 24 * time.Hour)}

	assert.True(t, stale.ExpiryEligible(now, retention))
	assert.False(t, fresh.ExpiryEligible(now, retention))
	assert.False(t, accepted.ExpiryEligible(now, retention))
}
