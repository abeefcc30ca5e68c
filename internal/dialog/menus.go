package dialog

import (
	"strings"

	"skladbot/internal/domain"
	"skladbot/internal/i18n"
	"skladbot/internal/roles"
)

// Menus are plain button label grids; the transport layer turns them
// into reply keyboards. Rows mirror the policy, so a role never sees
// a button it cannot use.

func mainMenu(role domain.Role, lang string) [][]string {
	var rows [][]string
	if row := menuRow(role, lang, []entryKey{
		{roles.MenuProducts, "btn_products"},
		{roles.MenuStands, "btn_stands"},
	}); len(row) > 0 {
		rows = append(rows, row)
	}
	if row := menuRow(role, lang, []entryKey{{roles.MenuClients, "btn_clients"}}); len(row) > 0 {
		rows = append(rows, row)
	}
	if row := menuRow(role, lang, []entryKey{{roles.MenuPickup, "btn_pickup"}}); len(row) > 0 {
		rows = append(rows, row)
	}
	if row := menuRow(role, lang, []entryKey{
		{roles.MenuPlanning, "btn_planning"},
		{roles.MenuHours, "btn_hours"},
	}); len(row) > 0 {
		rows = append(rows, row)
	}
	if row := menuRow(role, lang, []entryKey{{roles.MenuAdmin, "btn_admin"}}); len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, []string{i18n.T(lang, "btn_language")})
	return rows
}

func clientsMenu(role domain.Role, lang string) [][]string {
	var rows [][]string
	for _, ek := range []entryKey{
		{roles.ClientsAdd, "btn_clients_add"},
		{roles.ClientsSearch, "btn_clients_search"},
		{roles.ClientsReadyLier, "btn_clients_ready_lier"},
		{roles.ClientsProcessed, "btn_clients_processed"},
		{roles.ClientsPickupList, "btn_clients_pickup_list"},
	} {
		if roles.Allowed(role, ek.entry) {
			rows = append(rows, []string{i18n.T(lang, ek.key)})
		}
	}
	rows = append(rows, backRow(lang))
	return rows
}

type entryKey struct {
	entry roles.Entry
	key   string
}

func menuRow(role domain.Role, lang string, entries []entryKey) []string {
	var row []string
	for _, ek := range entries {
		if roles.Allowed(role, ek.entry) {
			row = append(row, i18n.T(lang, ek.key))
		}
	}
	return row
}

func backRow(lang string) []string {
	return []string{i18n.T(lang, "btn_back")}
}

func planningMenu(lang string) [][]string {
	return [][]string{
		{i18n.T(lang, "btn_planning_outbound"), i18n.T(lang, "btn_planning_warehouse")},
		backRow(lang),
	}
}

func periodMenu(lang string) [][]string {
	return [][]string{
		{i18n.T(lang, "btn_period_today"), i18n.T(lang, "btn_period_tomorrow")},
		{i18n.T(lang, "btn_period_week"), i18n.T(lang, "btn_period_month")},
		{i18n.T(lang, "btn_period_date")},
		backRow(lang),
	}
}

func breakMenu(lang string) [][]string {
	return [][]string{
		{i18n.T(lang, "btn_break_yes"), i18n.T(lang, "btn_break_no")},
		backRow(lang),
	}
}

func adminMenu(lang string) [][]string {
	return [][]string{
		{i18n.T(lang, "btn_admin_roles")},
		{i18n.T(lang, "btn_admin_performance")},
		backRow(lang),
	}
}

func remainderChoiceMenu(lang string) [][]string {
	return [][]string{
		{i18n.T(lang, "btn_remainder_none"), i18n.T(lang, "btn_remainder_enter")},
		backRow(lang),
	}
}

func confirmMenu(lang string) [][]string {
	return [][]string{
		{i18n.T(lang, "btn_confirm_save"), i18n.T(lang, "btn_confirm_edit"), i18n.T(lang, "btn_confirm_cancel")},
	}
}

func pickupActionMenu(lang string) [][]string {
	return [][]string{
		{i18n.T(lang, "btn_pickup_all"), i18n.T(lang, "btn_pickup_left")},
		backRow(lang),
	}
}

func langMenu() [][]string {
	var rows [][]string
	for _, code := range i18n.Languages {
		rows = append(rows, []string{strings.ToUpper(code)})
	}
	rows = append(rows, backRow(i18n.DefaultLang))
	return rows
}

// periodFromLabel resolves a localized period button back to its
// keyword.
func periodFromLabel(lang, text string) (string, bool) {
	switch text {
	case i18n.T(lang, "btn_period_today"):
		return periodToday, true
	case i18n.T(lang, "btn_period_tomorrow"):
		return periodTomorrow, true
	case i18n.T(lang, "btn_period_week"):
		return periodWeek, true
	case i18n.T(lang, "btn_period_month"):
		return periodMonth, true
	case i18n.T(lang, "btn_period_date"):
		return periodDate, true
	}
	return "", false
}
