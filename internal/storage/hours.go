package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"skladbot/internal/domain"
)

func (s *Store) AddHours(ctx context.Context, h domain.HoursEntry) error {
	query, args, err := qb.
		Insert("hours").
		Columns("user_id", "date", "start_time", "end_time", "break_minutes", "hours").
		Values(h.UserID, h.Date, h.StartTime, h.EndTime, h.BreakMinutes, h.Hours).
		ToSql()
	if err != nil {
		return fmt.Errorf("add hours: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("add hours for user %d: %w", h.UserID, err)
	}
	return nil
}

// SumHoursByName totals the hours logged by users with the given
// stored name over an inclusive ISO date range. Unknown names sum to
// zero.
func (s *Store) SumHoursByName(ctx context.Context, name, start, end string) (float64, error) {
	query, args, err := qb.
		Select("COALESCE(SUM(hours.hours), 0)").
		From("hours").
		Join("users ON users.user_id = hours.user_id").
		Where(sq.And{
			sq.Eq{"users.name": name},
			sq.GtOrEq{"hours.date": start},
			sq.LtOrEq{"hours.date": end},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("sum hours: %w", err)
	}
	var total float64
	if err := s.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("sum hours for %q: %w", name, err)
	}
	return total, nil
}
