package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skladbot/internal/domain"
)

func TestClientsMenuFollowsPolicy(t *testing.T) {
	rows := clientsMenu(domain.RoleWarehouse, "ru")
	require.Len(t, rows, 3)
	assert.Equal(t, []string{ru("btn_clients_search")}, rows[0])
	assert.Equal(t, []string{ru("btn_clients_ready_lier")}, rows[1])
	assert.Equal(t, []string{ru("btn_back")}, rows[2])

	rows = clientsMenu(domain.RoleOutbound, "ru")
	require.Len(t, rows, 6)
}

func TestMainMenuAdminSeesEverything(t *testing.T) {
	rows := mainMenu(domain.RoleAdmin, "en")
	var labels []string
	for _, row := range rows {
		labels = append(labels, row...)
	}
	assert.Contains(t, labels, "Products")
	assert.Contains(t, labels, "Pickup")
	assert.Contains(t, labels, "Admin")
	assert.Contains(t, labels, "Language")
}

func TestPeriodFromLabel(t *testing.T) {
	period, ok := periodFromLabel("ru", ru("btn_period_tomorrow"))
	assert.True(t, ok)
	assert.Equal(t, periodTomorrow, period)

	_, ok = periodFromLabel("ru", "вчера")
	assert.False(t, ok)
}
