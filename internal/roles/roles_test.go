package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skladbot/internal/domain"
)

func TestVerify(t *testing.T) {
	require.NoError(t, Verify())
}

func TestAllowedLattice(t *testing.T) {
	// Guests see only the reference catalogs and the language switch.
	assert.True(t, Allowed(domain.RoleGuest, MenuProducts))
	assert.True(t, Allowed(domain.RoleGuest, MenuLanguage))
	assert.False(t, Allowed(domain.RoleGuest, MenuClients))
	assert.False(t, Allowed(domain.RoleGuest, MenuHours))

	// Pickup belongs to outbound staff, not to warehouse or managers.
	assert.True(t, Allowed(domain.RoleOutbound, MenuPickup))
	assert.False(t, Allowed(domain.RoleWarehouse, MenuPickup))
	assert.False(t, Allowed(domain.RoleManager, MenuPickup))

	// Ready-lier and processed marks split between warehouse and managers.
	assert.True(t, Allowed(domain.RoleWarehouse, ClientsReadyLier))
	assert.False(t, Allowed(domain.RoleWarehouse, ClientsProcessed))
	assert.True(t, Allowed(domain.RoleManager, ClientsProcessed))
	assert.False(t, Allowed(domain.RoleManager, ClientsReadyLier))

	// Admin surfaces are boss and admin only.
	for _, r := range []domain.Role{domain.RoleGuest, domain.RoleOutbound, domain.RoleWarehouse, domain.RoleManager} {
		assert.False(t, Allowed(r, MenuAdmin), "role %s", r)
		assert.False(t, Allowed(r, AdminRoles), "role %s", r)
		assert.False(t, Allowed(r, AdminPerformance), "role %s", r)
	}
	assert.True(t, Allowed(domain.RoleBoss, AdminRoles))
	assert.True(t, Allowed(domain.RoleAdmin, AdminPerformance))
}

func TestUnknownEntryDenied(t *testing.T) {
	assert.False(t, Allowed(domain.RoleAdmin, Entry("menu.nonexistent")))
}
