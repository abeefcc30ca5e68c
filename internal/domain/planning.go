package domain

// OutboundPlan is one scheduled outbound trip.
type OutboundPlan struct {
	ID        int64  `db:"id"`
	Date      string `db:"date"`
	Client    string `db:"client"`
	CityIndex string `db:"city_index"`
	PlanText  string `db:"plan_text"`
}

// WarehousePlan is one scheduled warehouse shift.
type WarehousePlan struct {
	ID         int64  `db:"id"`
	Date       string `db:"date"`
	ShiftNames string `db:"shift_names"`
	PlanText   string `db:"plan_text"`
}

// HoursEntry is one submitted work shift. Hours already has the break
// deduction applied.
type HoursEntry struct {
	ID           int64   `db:"id"`
	UserID       int64   `db:"user_id"`
	Date         string  `db:"date"`
	StartTime    string  `db:"start_time"`
	EndTime      string  `db:"end_time"`
	BreakMinutes int     `db:"break_minutes"`
	Hours        float64 `db:"hours"`
}
