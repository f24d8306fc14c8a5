// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package rbac defines the fixed role hierarchy and the per-operation access
// policy table. Every protected operation lists its allowed roles explicitly;
// there is no implicit elevation between tiers.
package rbac

// Role represents a user's permission tier.
type Role string

const (
	RoleSuperAdmin     Role = "super-admin"
	RoleAdmin          Role = "admin"
	RoleEditor         Role = "editor"
	RoleContentManager Role = "content-manager"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleEditor, RoleContentManager:
		return true
	}
	return false
}

// Operation identifies a protected API operation in the policy table.
type Operation string

const (
	OpNewsWrite          Operation = "news:write"
	OpNewsDelete         Operation = "news:delete"
	OpPublicationsWrite  Operation = "publications:write"
	OpPublicationsDelete Operation = "publications:delete"
	OpRegulationsWrite   Operation = "regulations:write"
	OpRegulationsDelete  Operation = "regulations:delete"
	OpMediaWrite         Operation = "media:write"
	OpMediaDelete        Operation = "media:delete"
	OpPagesWrite         Operation = "pages:write"
	OpPagesDelete        Operation = "pages:delete"
	OpPortalsWrite       Operation = "portals:write"
	OpPortalsDelete      Operation = "portals:delete"
	OpFAQsWrite          Operation = "faqs:write"
	OpFAQsDelete         Operation = "faqs:delete"
	OpBoardMembersWrite  Operation = "board-members:write"
	OpBoardMembersDelete Operation = "board-members:delete"
	OpAdsWrite           Operation = "ads:write"
	OpAdsDelete          Operation = "ads:delete"
	OpSettingsWrite      Operation = "settings:write"
	OpContactsRead       Operation = "contacts:read"
	OpContactsWrite      Operation = "contacts:write"
	OpUsersRead          Operation = "users:read"
	OpUsersCreate        Operation = "users:create"
	OpUsersUpdate        Operation = "users:update"
	OpUsersDelete        Operation = "users:delete"
	OpAuditRead          Operation = "audit:read"
	OpDashboardRead      Operation = "dashboard:read"
)

// policy maps each operation to its allowed role set. The mapping is
// data-driven so it can be inspected and tested independently of the
// HTTP layer.
var policy = map[Operation][]Role{
	OpNewsWrite:          {RoleSuperAdmin, RoleAdmin, RoleEditor},
	OpNewsDelete:         {RoleSuperAdmin, RoleAdmin},
	OpPublicationsWrite:  {RoleSuperAdmin, RoleAdmin, RoleEditor},
	OpPublicationsDelete: {RoleSuperAdmin, RoleAdmin},
	OpRegulationsWrite:   {RoleSuperAdmin, RoleAdmin, RoleEditor},
	OpRegulationsDelete:  {RoleSuperAdmin, RoleAdmin},
	OpMediaWrite:         {RoleSuperAdmin, RoleAdmin, RoleEditor},
	OpMediaDelete:        {RoleSuperAdmin, RoleAdmin},
	OpPagesWrite:         {RoleSuperAdmin, RoleAdmin, RoleEditor, RoleContentManager},
	OpPagesDelete:        {RoleSuperAdmin, RoleAdmin},
	OpPortalsWrite:       {RoleSuperAdmin, RoleAdmin, RoleEditor},
	OpPortalsDelete:      {RoleSuperAdmin, RoleAdmin},
	OpFAQsWrite:          {RoleSuperAdmin, RoleAdmin, RoleEditor},
	OpFAQsDelete:         {RoleSuperAdmin, RoleAdmin},
	OpBoardMembersWrite:  {RoleSuperAdmin, RoleAdmin},
	OpBoardMembersDelete: {RoleSuperAdmin, RoleAdmin},
	OpAdsWrite:           {RoleSuperAdmin, RoleAdmin},
	OpAdsDelete:          {RoleSuperAdmin, RoleAdmin},
	OpSettingsWrite:      {RoleSuperAdmin, RoleAdmin},
	OpContactsRead:       {RoleSuperAdmin, RoleAdmin},
	OpContactsWrite:      {RoleSuperAdmin, RoleAdmin},
	OpUsersRead:          {RoleSuperAdmin, RoleAdmin},
	OpUsersCreate:        {RoleSuperAdmin, RoleAdmin},
	OpUsersUpdate:        {RoleSuperAdmin},
	OpUsersDelete:        {RoleSuperAdmin},
	OpAuditRead:          {RoleSuperAdmin, RoleAdmin},
	OpDashboardRead:      {RoleSuperAdmin, RoleAdmin, RoleEditor, RoleContentManager},
}

// Allowed reports whether role may perform op. Unknown operations are
// always denied.
func Allowed(op Operation, role Role) bool {
	for _, r := range policy[op] {
		if r == role {
			return true
		}
	}
	return false
}

// AllowedRoles returns a copy of the role set for op. Used by tests and
// admin tooling; the live check goes through Allowed.
func AllowedRoles(op Operation) []Role {
	roles := policy[op]
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}
