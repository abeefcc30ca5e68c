package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"skladbot/internal/domain"
)

// ListOutboundPlans returns outbound trips with start <= date <= end,
// oldest first. Bounds are inclusive ISO dates.
func (s *Store) ListOutboundPlans(ctx context.Context, start, end string) ([]domain.OutboundPlan, error) {
	query, args, err := qb.
		Select("id", "date", "client", "city_index", "plan_text").
		From("planning_outbound").
		Where(sq.And{
			sq.GtOrEq{"date": start},
			sq.LtOrEq{"date": end},
		}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list outbound plans: %w", err)
	}
	var out []domain.OutboundPlan
	if err := s.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list outbound plans %s..%s: %w", start, end, err)
	}
	return out, nil
}

// ListWarehousePlans is the warehouse counterpart of
// ListOutboundPlans.
func (s *Store) ListWarehousePlans(ctx context.Context, start, end string) ([]domain.WarehousePlan, error) {
	query, args, err := qb.
		Select("id", "date", "shift_names", "plan_text").
		From("planning_warehouse").
		Where(sq.And{
			sq.GtOrEq{"date": start},
			sq.LtOrEq{"date": end},
		}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list warehouse plans: %w", err)
	}
	var out []domain.WarehousePlan
	if err := s.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list warehouse plans %s..%s: %w", start, end, err)
	}
	return out, nil
}
