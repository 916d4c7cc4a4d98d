package models

// Resource kinds gated by the permission set.
const (
	ResourceRegistries = "registries"
	ResourceWorkLogs   = "workLogs"
)

// Actions gated per resource kind.
const (
	ActionCreate = "create"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

// PermissionFlags holds the per-action grant flags for one resource kind.
type PermissionFlags struct {
	Create bool `json:"create"`
	Edit   bool `json:"edit"`
	Delete bool `json:"delete"`
}

// allows returns the flag for the given action, false for unknown actions.
func (f PermissionFlags) allows(action string) bool {
	switch action {
	case ActionCreate:
		return f.Create
	case ActionEdit:
		return f.Edit
	case ActionDelete:
		return f.Delete
	default:
		return false
	}
}

// Permissions is the per-user permission set, one flag group per feature area.
// The zero value denies everything, so a missing or malformed stored payload
// fails closed.
type Permissions struct {
	Registries PermissionFlags `json:"registries"`
	WorkLogs   PermissionFlags `json:"workLogs"`
}

// Allows reports whether the set grants the given action on the given
// resource kind. Unknown resource kinds and actions are denied.
func (p Permissions) Allows(resource, action string) bool {
	switch resource {
	case ResourceRegistries:
		return p.Registries.allows(action)
	case ResourceWorkLogs:
		return p.WorkLogs.allows(action)
	default:
		return false
	}
}
