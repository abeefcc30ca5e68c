package dialog

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skladbot/internal/domain"
	"skladbot/internal/i18n"
)

func ru(key string) string { return i18n.T("ru", key) }

func newTestEngine(ownerID int64) (*Engine, *fakeStore) {
	f := newFakeStore()
	e := New(f, ownerID)
	e.now = func() time.Time { return time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC) }
	return e, f
}

func seedUser(f *fakeStore, id int64, name string, role domain.Role) {
	f.users[id] = domain.User{ID: id, Name: name, Role: role, Lang: "ru"}
}

func send(t *testing.T, e *Engine, userID int64, text string) Reply {
	t.Helper()
	r, err := e.Handle(context.Background(), Input{UserID: userID, Text: text})
	require.NoError(t, err)
	return r
}

func TestStartOnboardsUnknownUser(t *testing.T) {
	e, f := newTestEngine(0)

	r, err := e.HandleStart(context.Background(), Input{UserID: 7})
	require.NoError(t, err)
	assert.Contains(t, r.Text, "7")
	assert.Contains(t, r.Text, ru("ask_name"))

	r = send(t, e, 7, "Анна")
	assert.Contains(t, r.Text, "Анна")
	u := f.users[7]
	assert.Equal(t, domain.RoleGuest, u.Role)
	assert.Equal(t, "ru", u.Lang)
	// Guest menu: catalogs row plus language row only.
	require.Len(t, r.Menu, 2)
	assert.Equal(t, []string{ru("btn_products"), ru("btn_stands")}, r.Menu[0])
	assert.Equal(t, []string{ru("btn_language")}, r.Menu[1])
}

func TestStartKnownUserShowsMainMenu(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 7, "Игорь", domain.RoleOutbound)

	r, err := e.HandleStart(context.Background(), Input{UserID: 7})
	require.NoError(t, err)
	assert.Contains(t, r.Text, "Игорь")
	assert.NotEmpty(t, r.Menu)
}

func TestAddClientSkippedRemainder(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Игорь", domain.RoleOutbound)

	r := send(t, e, 1, ru("btn_clients"))
	assert.Equal(t, ru("btn_clients"), r.Text)

	send(t, e, 1, ru("btn_clients_add"))
	send(t, e, 1, "ACME")
	send(t, e, 1, "Рига")
	send(t, e, 1, "Плитка 30x60")
	send(t, e, 1, ru("btn_remainder_none"))

	r = send(t, e, 1, "05.03.2025")
	assert.Contains(t, r.Text, "ACME")
	assert.Contains(t, r.Text, "05.03.2025")
	assert.Contains(t, r.Text, "-")

	r = send(t, e, 1, ru("btn_confirm_save"))
	assert.Equal(t, ru("saved"), r.Text)

	require.Len(t, f.clients, 1)
	c := f.clients[1]
	assert.Equal(t, "ACME", c.Name)
	assert.Equal(t, "Рига", c.City)
	assert.Equal(t, "Плитка 30x60", c.MissingProduct)
	assert.True(t, c.Remainder.Valid)
	assert.Equal(t, "", c.Remainder.String)
	assert.Equal(t, "2025-03-05", c.Date)
	assert.Equal(t, "Игорь", c.Responsible)
}

func TestAddClientInvalidDateReprompts(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Игорь", domain.RoleOutbound)

	send(t, e, 1, ru("btn_clients_add"))
	send(t, e, 1, "ACME")
	send(t, e, 1, "Рига")
	send(t, e, 1, "Плитка")
	send(t, e, 1, ru("btn_remainder_none"))

	r := send(t, e, 1, "5.3.2025")
	assert.Equal(t, ru("clients_enter_date"), r.Text)

	// The flow is still on the date step.
	r = send(t, e, 1, "06.03.2025")
	assert.Contains(t, r.Text, "06.03.2025")
}

func TestAddClientEditRestartsFromName(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Игорь", domain.RoleOutbound)

	send(t, e, 1, ru("btn_clients_add"))
	send(t, e, 1, "ACME")
	send(t, e, 1, "Рига")
	send(t, e, 1, "Плитка")
	send(t, e, 1, ru("btn_remainder_none"))
	send(t, e, 1, "05.03.2025")

	r := send(t, e, 1, ru("btn_confirm_edit"))
	assert.Equal(t, ru("clients_enter_name"), r.Text)
	assert.Empty(t, f.clients)
}

func TestAddClientCancelDiscards(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Игорь", domain.RoleOutbound)

	send(t, e, 1, ru("btn_clients_add"))
	send(t, e, 1, "ACME")
	send(t, e, 1, "Рига")
	send(t, e, 1, "Плитка")
	send(t, e, 1, ru("btn_remainder_none"))
	send(t, e, 1, "05.03.2025")

	r := send(t, e, 1, ru("btn_confirm_cancel"))
	assert.Equal(t, ru("cancelled"), r.Text)
	assert.Empty(t, f.clients)
}

func TestReadyLierUpdatesClient(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Мария", domain.RoleWarehouse)
	f.nextClientID = 1
	f.clients[1] = domain.Client{ID: 1, Name: "ACME", City: "Рига"}

	send(t, e, 1, ru("btn_clients_ready_lier"))
	r := send(t, e, 1, "acme")
	assert.Contains(t, r.Text, "ACME")

	send(t, e, 1, "1")
	r = send(t, e, 1, "06.03.2025")
	assert.Equal(t, ru("saved"), r.Text)

	c := f.clients[1]
	assert.Equal(t, "2025-03-06", c.ReadyLierDate.String)
	assert.Equal(t, "Мария", c.ReadyLierBy.String)
}

func TestReadyLierAcceptsUnlistedID(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Мария", domain.RoleWarehouse)
	f.nextClientID = 1
	f.clients[1] = domain.Client{ID: 1, Name: "ACME", City: "Рига"}

	send(t, e, 1, ru("btn_clients_ready_lier"))
	send(t, e, 1, "acme")
	// An id outside the shown candidates is taken at face value.
	send(t, e, 1, "999")
	r := send(t, e, 1, "06.03.2025")
	assert.Equal(t, ru("saved"), r.Text)
	assert.False(t, f.clients[1].ReadyLierDate.Valid)
}

func TestReadyLierNonNumericIDReprompts(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Мария", domain.RoleWarehouse)
	f.nextClientID = 1
	f.clients[1] = domain.Client{ID: 1, Name: "ACME", City: "Рига"}

	send(t, e, 1, ru("btn_clients_ready_lier"))
	send(t, e, 1, "acme")
	send(t, e, 1, "не число")
	// Still waiting for an id.
	send(t, e, 1, "1")
	r := send(t, e, 1, "06.03.2025")
	assert.Equal(t, ru("saved"), r.Text)
}

func TestProcessedStoresTimestamp(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Олег", domain.RoleManager)
	f.nextClientID = 1
	f.clients[1] = domain.Client{ID: 1, Name: "ACME", City: "Рига"}

	send(t, e, 1, ru("btn_clients_processed"))
	send(t, e, 1, "acme")
	send(t, e, 1, "1")
	send(t, e, 1, "06.03.2025")
	r := send(t, e, 1, "14:30")
	assert.Equal(t, ru("saved"), r.Text)

	c := f.clients[1]
	assert.Equal(t, "2025-03-06 14:30", c.ProcessedDatetime.String)
	assert.Equal(t, "Олег", c.ProcessedBy.String)
}

func TestPickupAllClearsRemainder(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Игорь", domain.RoleOutbound)
	f.nextClientID = 1
	f.clients[1] = domain.Client{ID: 1, Name: "ACME", City: "Рига", Remainder: null.StringFrom("5 коробок")}

	send(t, e, 1, ru("btn_pickup"))
	send(t, e, 1, "acme")
	send(t, e, 1, "1")
	send(t, e, 1, ru("btn_pickup_all"))
	r := send(t, e, 1, "07.03.2025")
	assert.Equal(t, ru("saved"), r.Text)

	assert.Equal(t, "", f.clients[1].Remainder.String)
	require.Len(t, f.pickupLogs, 1)
	log := f.pickupLogs[0]
	assert.Equal(t, int64(1), log.ClientID)
	assert.Equal(t, domain.PickupAll, log.Action)
	assert.Equal(t, "", log.Remainder.String)
	assert.Equal(t, "2025-03-07", log.Date)
	assert.Equal(t, "Игорь", log.Responsible)
}

func TestPickupLeftStoresRemainder(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Игорь", domain.RoleOutbound)
	f.nextClientID = 1
	f.clients[1] = domain.Client{ID: 1, Name: "ACME", City: "Рига", Remainder: null.StringFrom("5 коробок")}

	send(t, e, 1, ru("btn_pickup"))
	send(t, e, 1, "acme")
	send(t, e, 1, "1")
	send(t, e, 1, ru("btn_pickup_left"))
	send(t, e, 1, "2 коробки")
	send(t, e, 1, "07.03.2025")

	assert.Equal(t, "2 коробки", f.clients[1].Remainder.String)
	require.Len(t, f.pickupLogs, 1)
	assert.Equal(t, domain.PickupLeft, f.pickupLogs[0].Action)
	assert.Equal(t, "2 коробки", f.pickupLogs[0].Remainder.String)
}

func TestPickupList(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Игорь", domain.RoleOutbound)

	r := send(t, e, 1, ru("btn_clients_pickup_list"))
	assert.Equal(t, ru("pickup_list_empty"), r.Text)

	f.nextClientID = 2
	f.clients[1] = domain.Client{ID: 1, Name: "ACME", City: "Рига", Remainder: null.StringFrom("5 коробок")}
	f.clients[2] = domain.Client{ID: 2, Name: "Beta", City: "Вильнюс", Remainder: null.StringFrom("")}

	r = send(t, e, 1, ru("btn_clients_pickup_list"))
	assert.Contains(t, r.Text, "ACME")
	assert.NotContains(t, r.Text, "Beta")
}

func TestHoursWithBreak(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Игорь", domain.RoleOutbound)

	send(t, e, 1, ru("btn_hours"))
	send(t, e, 1, "05.03.2025")
	send(t, e, 1, "09:00")
	send(t, e, 1, "17:30")
	r := send(t, e, 1, ru("btn_break_yes"))
	assert.Contains(t, r.Text, "8.0")

	require.Len(t, f.hours, 1)
	h := f.hours[0]
	assert.Equal(t, int64(1), h.UserID)
	assert.Equal(t, "2025-03-05", h.Date)
	assert.Equal(t, 30, h.BreakMinutes)
	assert.InDelta(t, 8.0, h.Hours, 1e-9)
}

func TestHoursOvernightShift(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Игорь", domain.RoleOutbound)

	send(t, e, 1, ru("btn_hours"))
	send(t, e, 1, "05.03.2025")
	send(t, e, 1, "22:00")
	send(t, e, 1, "06:00")
	send(t, e, 1, ru("btn_break_no"))

	require.Len(t, f.hours, 1)
	assert.InDelta(t, 8.0, f.hours[0].Hours, 1e-9)
}

func TestHoursInvalidTimeReprompts(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Игорь", domain.RoleOutbound)

	send(t, e, 1, ru("btn_hours"))
	send(t, e, 1, "05.03.2025")
	r := send(t, e, 1, "9:00")
	assert.Equal(t, ru("hours_start"), r.Text)
	assert.Empty(t, f.hours)
}

func TestPlanningWeekFiltersRange(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Игорь", domain.RoleOutbound)
	f.outbound = []domain.OutboundPlan{
		{Date: "2025-03-04", Client: "ACME", PlanText: "доставка"},
		{Date: "2025-03-10", Client: "Beta", PlanText: "монтаж"},
	}

	send(t, e, 1, ru("btn_planning"))
	send(t, e, 1, ru("btn_planning_outbound"))
	// now() is Wednesday 2025-03-05; the week is 03-03..03-09.
	r := send(t, e, 1, ru("btn_period_week"))
	assert.Contains(t, r.Text, "ACME")
	assert.NotContains(t, r.Text, "Beta")
}

func TestPlanningExplicitDateEmpty(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Игорь", domain.RoleOutbound)

	send(t, e, 1, ru("btn_planning"))
	send(t, e, 1, ru("btn_planning_warehouse"))
	send(t, e, 1, ru("btn_period_date"))
	r := send(t, e, 1, "05.03.2025")
	assert.Equal(t, ru("planning_empty"), r.Text)
}

func TestAdminRoleFlow(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Босс", domain.RoleBoss)
	seedUser(f, 42, "Новичок", domain.RoleGuest)

	r := send(t, e, 1, ru("btn_admin"))
	assert.Equal(t, ru("btn_admin"), r.Text)

	send(t, e, 1, ru("btn_admin_roles"))
	send(t, e, 1, "42")
	r = send(t, e, 1, "manager")
	assert.Equal(t, ru("admin_role_done"), r.Text)
	assert.Equal(t, domain.RoleManager, f.users[42].Role)
}

func TestAdminRoleRejectsUnknownRole(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Босс", domain.RoleBoss)
	seedUser(f, 42, "Новичок", domain.RoleGuest)

	send(t, e, 1, ru("btn_admin_roles"))
	send(t, e, 1, "42")
	r := send(t, e, 1, "SUPERVISOR")
	assert.Equal(t, ru("admin_role_set"), r.Text)
	assert.Equal(t, domain.RoleGuest, f.users[42].Role)
}

func TestAdminPerformanceSumsHours(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Босс", domain.RoleBoss)
	seedUser(f, 2, "Игорь", domain.RoleOutbound)
	f.hours = []domain.HoursEntry{
		{UserID: 2, Date: "2025-03-04", Hours: 8},
		{UserID: 2, Date: "2025-03-05", Hours: 7.5},
		{UserID: 2, Date: "2025-02-01", Hours: 4},
	}

	send(t, e, 1, ru("btn_admin_performance"))
	send(t, e, 1, "Игорь")
	r := send(t, e, 1, ru("btn_period_week"))
	assert.Contains(t, r.Text, "15.5")
}

func TestGuestCannotReachGatedMenus(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Гость", domain.RoleGuest)

	for _, label := range []string{
		ru("btn_clients"), ru("btn_pickup"), ru("btn_planning"),
		ru("btn_hours"), ru("btn_admin"), ru("btn_admin_roles"),
	} {
		r := send(t, e, 1, label)
		assert.Equal(t, ru("unknown"), r.Text, "label %s", label)
	}
}

func TestRoleDowngradeMidFlowDenied(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Игорь", domain.RoleOutbound)

	send(t, e, 1, ru("btn_pickup"))
	seedUser(f, 1, "Игорь", domain.RoleGuest)

	r := send(t, e, 1, "acme")
	assert.Equal(t, ru("unknown"), r.Text)
	// The session was dropped, not suspended.
	r = send(t, e, 1, ru("btn_products"))
	assert.Equal(t, ru("products_search"), r.Text)
}

func TestBackCancelsAndIsIdempotent(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Игорь", domain.RoleOutbound)

	send(t, e, 1, ru("btn_hours"))
	r := send(t, e, 1, ru("btn_back"))
	assert.Equal(t, ru("main_menu"), r.Text)
	assert.NotEmpty(t, r.Menu)

	// A date typed after cancel is just unknown input.
	r = send(t, e, 1, "05.03.2025")
	assert.Equal(t, ru("unknown"), r.Text)

	r = send(t, e, 1, ru("btn_back"))
	assert.Equal(t, ru("main_menu"), r.Text)
}

func TestLanguageSwitch(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Игорь", domain.RoleOutbound)

	r := send(t, e, 1, ru("btn_language"))
	assert.Equal(t, ru("lang_prompt"), r.Text)

	r = send(t, e, 1, "xx")
	assert.Equal(t, ru("lang_prompt"), r.Text)

	r = send(t, e, 1, "EN")
	assert.Equal(t, i18n.T("en", "lang_saved"), r.Text)
	assert.Equal(t, "en", f.users[1].Lang)

	// Menus now render in English.
	r = send(t, e, 1, i18n.T("en", "btn_back"))
	assert.Equal(t, i18n.T("en", "main_menu"), r.Text)
}

func TestClientSearchZeroMatchesEndsFlow(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Игорь", domain.RoleOutbound)

	send(t, e, 1, ru("btn_clients_search"))
	r := send(t, e, 1, "нет такого")
	assert.Equal(t, ru("clients_search_none"), r.Text)

	r = send(t, e, 1, "ещё текст")
	assert.Equal(t, ru("unknown"), r.Text)
}

func TestProductsSearch(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Гость", domain.RoleGuest)
	f.products = []domain.Product{
		{ID: 1, Sort: "Глазурь", Name: "Terra", Article: "TR-100"},
	}

	send(t, e, 1, ru("btn_products"))
	r := send(t, e, 1, "tr-100")
	assert.Contains(t, r.Text, "Terra")
	assert.Contains(t, r.Text, "TR-100")
}

func TestStandsSearchZeroMatches(t *testing.T) {
	e, f := newTestEngine(0)
	seedUser(f, 1, "Гость", domain.RoleGuest)

	send(t, e, 1, ru("btn_stands"))
	r := send(t, e, 1, "S-1")
	assert.Equal(t, ru("clients_search_none"), r.Text)
}

func TestOwnerBootstrapAndDebug(t *testing.T) {
	e, f := newTestEngine(99)

	r, err := e.Handle(context.Background(), Input{UserID: 99, Name: "Владелец", Text: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "user_id=99, role=ADMIN", r.Text)
	assert.Equal(t, domain.RoleAdmin, f.users[99].Role)
	assert.Equal(t, "Владелец", f.users[99].Name)
}

func TestOwnerPromotedOnContact(t *testing.T) {
	e, f := newTestEngine(99)
	seedUser(f, 99, "Владелец", domain.RoleGuest)

	send(t, e, 99, ru("btn_products"))
	assert.Equal(t, domain.RoleAdmin, f.users[99].Role)
}
