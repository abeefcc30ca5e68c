package domain

import "strings"

// Role controls which menu entries and workflows a user may reach.
type Role string

const (
	RoleGuest     Role = "GUEST"
	RoleOutbound  Role = "OUTBOUND"
	RoleWarehouse Role = "WAREHOUSE"
	RoleManager   Role = "MANAGER"
	RoleBoss      Role = "BOSS"
	RoleAdmin     Role = "ADMIN"
)

// AllRoles lists every recognized role.
var AllRoles = []Role{RoleGuest, RoleOutbound, RoleWarehouse, RoleManager, RoleBoss, RoleAdmin}

// ParseRole resolves a role name case-insensitively.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AllRoles {
		if r == known {
			return known, true
		}
	}
	return "", false
}

// User is a staff member identified by their Telegram id.
// Created on first contact with RoleGuest; never deleted.
type User struct {
	ID   int64  `db:"user_id"`
	Name string `db:"name"`
	Role Role   `db:"role"`
	Lang string `db:"lang"`
}
