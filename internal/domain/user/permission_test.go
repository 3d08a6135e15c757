package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleAdmin, PermissionInvitationDelete))
	assert.True(t, HasPermission(RoleManager, PermissionInvitationSend))
	assert.False(t, HasPermission(RoleManager, PermissionInvitationDelete))
	assert.True(t, HasPermission(RoleUser, PermissionInvitationRespond))
	assert.False(t, HasPermission(RoleUser, PermissionUserManage))
	assert.False(t, HasPermission(Role("UNKNOWN"), PermissionViewOwnProfile))
}
