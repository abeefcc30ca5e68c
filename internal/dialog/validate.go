package dialog

import "time"

const (
	inputDateLayout = "02.01.2006"
	isoDateLayout   = "2006-01-02"
	timeLayout      = "15:04"
)

// parseDate accepts strictly DD.MM.YYYY and returns the ISO form.
// Re-rendering catches inputs Go would otherwise accept leniently,
// such as single-digit days.
func parseDate(text string) (string, bool) {
	t, err := time.Parse(inputDateLayout, text)
	if err != nil || t.Format(inputDateLayout) != text {
		return "", false
	}
	return t.Format(isoDateLayout), true
}

// parseTime accepts strictly HH:MM and returns it normalized.
func parseTime(text string) (string, bool) {
	t, err := time.Parse(timeLayout, text)
	if err != nil || t.Format(timeLayout) != text {
		return "", false
	}
	return t.Format(timeLayout), true
}

// computeHours returns the shift length in decimal hours minus the
// break. An end before the start wraps past midnight.
func computeHours(start, end string, breakMinutes int) float64 {
	st, _ := time.Parse(timeLayout, start)
	en, _ := time.Parse(timeLayout, end)
	if en.Before(st) {
		en = en.Add(24 * time.Hour)
	}
	return en.Sub(st).Hours() - float64(breakMinutes)/60
}

// resolvePeriod maps a period keyword to an inclusive ISO date range.
// Weeks run Monday through Sunday.
func resolvePeriod(period string, now time.Time) (string, string, bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch period {
	case periodToday:
		return today.Format(isoDateLayout), today.Format(isoDateLayout), true
	case periodTomorrow:
		d := today.AddDate(0, 0, 1)
		return d.Format(isoDateLayout), d.Format(isoDateLayout), true
	case periodWeek:
		start := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
		end := start.AddDate(0, 0, 6)
		return start.Format(isoDateLayout), end.Format(isoDateLayout), true
	case periodMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		end := start.AddDate(0, 1, -1)
		return start.Format(isoDateLayout), end.Format(isoDateLayout), true
	}
	return "", "", false
}

// Period keywords, resolved from the localized buttons before lookup.
const (
	periodToday    = "today"
	periodTomorrow = "tomorrow"
	periodWeek     = "week"
	periodMonth    = "month"
	periodDate     = "date"
)
