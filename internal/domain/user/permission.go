package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Invitation Management
	PermissionInvitationSend    Permission = "invitation.send"
	PermissionInvitationRespond Permission = "invitation.respond"
	PermissionInvitationViewAll Permission = "invitation.view_all"
	PermissionInvitationDelete  Permission = "invitation.delete"

	// Organization Management
	PermissionOrganizationView   Permission = "organization.view"
	PermissionOrganizationManage Permission = "organization.manage"

	// User Management
	PermissionUserView   Permission = "user.view"
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionInvitationSend,
		PermissionInvitationRespond,
		PermissionInvitationViewAll,
		PermissionInvitationDelete,
		PermissionOrganizationView,
		PermissionOrganizationManage,
		PermissionUserView,
		PermissionUserManage,
	},
	RoleManager: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionInvitationSend,
		PermissionInvitationViewAll,
		PermissionOrganizationView,
		PermissionOrganizationManage,
		PermissionUserView,
	},
	RoleUser: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionInvitationRespond,
		PermissionOrganizationView,
	},
}

// HasPermission checks whether a role grants a permission
func HasPermission(role Role, perm Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}
