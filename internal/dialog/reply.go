package dialog

import (
	"fmt"
	"strings"

	"skladbot/internal/domain"
	"skladbot/internal/i18n"
)

// Reply is one outgoing message with an optional reply keyboard. A nil
// Menu leaves the current keyboard in place; transports map an empty
// non-nil Menu to keyboard removal.
type Reply struct {
	Text string
	Menu [][]string
}

func text(lang, key string) Reply {
	return Reply{Text: i18n.T(lang, key)}
}

func textf(lang, key string, args ...any) Reply {
	return Reply{Text: fmt.Sprintf(i18n.T(lang, key), args...)}
}

func withMenu(r Reply, menu [][]string) Reply {
	r.Menu = menu
	return r
}

func joinLines(lines ...string) string {
	return strings.Join(lines, "\n")
}

func formatClientRow(c domain.Client) string {
	remainder := c.Remainder.String
	if remainder == "" {
		remainder = "-"
	}
	return fmt.Sprintf("%d | %s | %s | %s", c.ID, c.Name, c.City, remainder)
}

func formatClients(clients []domain.Client) string {
	lines := make([]string, 0, len(clients))
	for _, c := range clients {
		lines = append(lines, formatClientRow(c))
	}
	return strings.Join(lines, "\n")
}

func formatProducts(products []domain.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("%d | %s | %s | %s", p.ID, p.Sort, p.Name, p.Article))
	}
	return strings.Join(lines, "\n")
}

func formatStands(stands []domain.Stand) string {
	lines := make([]string, 0, len(stands))
	for _, s := range stands {
		lines = append(lines, fmt.Sprintf("%d | %s | %s | %s | %s", s.ID, s.StandName, s.Size, s.Article, s.TilesText))
	}
	return strings.Join(lines, "\n")
}

func formatOutboundPlans(plans []domain.OutboundPlan) string {
	lines := make([]string, 0, len(plans))
	for _, p := range plans {
		lines = append(lines, fmt.Sprintf("%s | %s | %s", p.Date, p.Client, p.PlanText))
	}
	return strings.Join(lines, "\n")
}

func formatWarehousePlans(plans []domain.WarehousePlan) string {
	lines := make([]string, 0, len(plans))
	for _, p := range plans {
		lines = append(lines, fmt.Sprintf("%s | %s | %s", p.Date, p.ShiftNames, p.PlanText))
	}
	return strings.Join(lines, "\n")
}
