// Package roles is the single source of truth for which role may reach
// which menu entry or workflow. Every dialog dispatch consults Allowed,
// so a user whose role was downgraded mid-conversation loses access on
// their next message.
package roles

import (
	"fmt"

	"skladbot/internal/domain"
)

// Entry names a menu item or workflow gate.
type Entry string

const (
	MenuProducts Entry = "menu.products"
	MenuStands   Entry = "menu.stands"
	MenuClients  Entry = "menu.clients"
	MenuPickup   Entry = "menu.pickup"
	MenuPlanning Entry = "menu.planning"
	MenuHours    Entry = "menu.hours"
	MenuAdmin    Entry = "menu.admin"
	MenuLanguage Entry = "menu.language"

	ClientsAdd        Entry = "clients.add"
	ClientsSearch     Entry = "clients.search"
	ClientsReadyLier  Entry = "clients.ready_lier"
	ClientsProcessed  Entry = "clients.processed"
	ClientsPickupList Entry = "clients.pickup_list"

	AdminRoles       Entry = "admin.roles"
	AdminPerformance Entry = "admin.performance"
)

// AllEntries lists every gate, used by Verify and the menu builders.
var AllEntries = []Entry{
	MenuProducts, MenuStands, MenuClients, MenuPickup, MenuPlanning,
	MenuHours, MenuAdmin, MenuLanguage,
	ClientsAdd, ClientsSearch, ClientsReadyLier, ClientsProcessed, ClientsPickupList,
	AdminRoles, AdminPerformance,
}

var everyone = []domain.Role{
	domain.RoleGuest, domain.RoleOutbound, domain.RoleWarehouse,
	domain.RoleManager, domain.RoleBoss, domain.RoleAdmin,
}

var staff = []domain.Role{
	domain.RoleOutbound, domain.RoleWarehouse,
	domain.RoleManager, domain.RoleBoss, domain.RoleAdmin,
}

// policy maps each entry to the roles that may use it. The sets are
// deliberately not nested: OUTBOUND reaches pickup while MANAGER does
// not, and MANAGER reaches processed marks while WAREHOUSE does not.
var policy = map[Entry][]domain.Role{
	MenuProducts: everyone,
	MenuStands:   everyone,
	MenuClients:  staff,
	MenuPickup:   {domain.RoleOutbound, domain.RoleBoss, domain.RoleAdmin},
	MenuPlanning: staff,
	MenuHours:    staff,
	MenuAdmin:    {domain.RoleBoss, domain.RoleAdmin},
	MenuLanguage: everyone,

	ClientsAdd:        {domain.RoleOutbound, domain.RoleBoss, domain.RoleAdmin},
	ClientsSearch:     staff,
	ClientsReadyLier:  {domain.RoleOutbound, domain.RoleWarehouse, domain.RoleBoss, domain.RoleAdmin},
	ClientsProcessed:  {domain.RoleOutbound, domain.RoleManager, domain.RoleBoss, domain.RoleAdmin},
	ClientsPickupList: {domain.RoleOutbound, domain.RoleBoss, domain.RoleAdmin},

	AdminRoles:       {domain.RoleBoss, domain.RoleAdmin},
	AdminPerformance: {domain.RoleBoss, domain.RoleAdmin},
}

// Allowed reports whether role may use entry. Unknown entries are
// denied.
func Allowed(role domain.Role, entry Entry) bool {
	for _, r := range policy[entry] {
		if r == role {
			return true
		}
	}
	return false
}

// Verify checks the policy table at startup: every entry must have at
// least one role, every named role must be known, and ADMIN must be
// able to reach everything.
func Verify() error {
	for _, entry := range AllEntries {
		allowed, ok := policy[entry]
		if !ok || len(allowed) == 0 {
			return fmt.Errorf("roles: entry %s has no allowed roles", entry)
		}
		for _, r := range allowed {
			if _, ok := domain.ParseRole(string(r)); !ok {
				return fmt.Errorf("roles: entry %s names unknown role %q", entry, r)
			}
		}
		if !Allowed(domain.RoleAdmin, entry) {
			return fmt.Errorf("roles: entry %s is unreachable for ADMIN", entry)
		}
	}
	return nil
}
