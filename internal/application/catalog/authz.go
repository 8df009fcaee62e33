package catalog

import (
	"slices"
	"strings"
)

// RoleAuthorizer grants create to authenticated actors holding one of Roles.
type RoleAuthorizer struct {
	Roles []string
}

func DefaultAuthorizer() RoleAuthorizer {
	return RoleAuthorizer{Roles: []string{"user", "moderator", "admin"}}
}

func (a RoleAuthorizer) CanCreate(actor Actor) bool {
	if strings.TrimSpace(actor.ID) == "" {
		return false
	}
	return slices.Contains(a.Roles, actor.Role)
}
