package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"skladbot/internal/domain"
)

var clientColumns = []string{
	"id", "name", "city", "missing_product", "remainder", "date", "responsible",
	"ready_lier_date", "ready_lier_by", "processed_datetime", "processed_by",
}

// CreateClient inserts a new client row and returns its id. Status
// columns start NULL.
func (s *Store) CreateClient(ctx context.Context, c domain.Client) (int64, error) {
	query, args, err := qb.
		Insert("clients").
		Columns("name", "city", "missing_product", "remainder", "date", "responsible").
		Values(c.Name, c.City, c.MissingProduct, c.Remainder, c.Date, c.Responsible).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("create client: %w", err)
	}
	var id int64
	if err := s.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("create client: %w", err)
	}
	return id, nil
}

// SearchClients matches a case-insensitive substring against name and
// city, newest first.
func (s *Store) SearchClients(ctx context.Context, search string) ([]domain.Client, error) {
	like := likePattern(search)
	query, args, err := qb.
		Select(clientColumns...).
		From("clients").
		Where(sq.Or{
			sq.Like{"lower(name)": like},
			sq.Like{"lower(city)": like},
		}).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	var out []domain.Client
	if err := s.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("search clients %q: %w", search, err)
	}
	return out, nil
}

func (s *Store) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	query, args, err := qb.
		Select(clientColumns...).
		From("clients").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	var c domain.Client
	if err := s.db.GetContext(ctx, &c, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get client %d: %w", id, err)
	}
	return &c, nil
}

// UpdateClientReadyLier records who confirmed readiness and when. The
// id is not required to exist; a miss updates zero rows.
func (s *Store) UpdateClientReadyLier(ctx context.Context, id int64, date, responsible string) error {
	query, args, err := qb.
		Update("clients").
		Set("ready_lier_date", date).
		Set("ready_lier_by", responsible).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("update ready lier: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update ready lier for client %d: %w", id, err)
	}
	return nil
}

// UpdateClientProcessed stores a "YYYY-MM-DD HH:MM" timestamp.
func (s *Store) UpdateClientProcessed(ctx context.Context, id int64, datetime, responsible string) error {
	query, args, err := qb.
		Update("clients").
		Set("processed_datetime", datetime).
		Set("processed_by", responsible).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("update processed: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update processed for client %d: %w", id, err)
	}
	return nil
}

// UpdateClientRemainder overwrites the remainder, blank when the whole
// pickup was taken.
func (s *Store) UpdateClientRemainder(ctx context.Context, id int64, remainder string) error {
	query, args, err := qb.
		Update("clients").
		Set("remainder", remainder).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("update remainder: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update remainder for client %d: %w", id, err)
	}
	return nil
}

// ListPickupClients returns clients whose remainder is set and
// non-blank, newest first.
func (s *Store) ListPickupClients(ctx context.Context) ([]domain.Client, error) {
	query, args, err := qb.
		Select(clientColumns...).
		From("clients").
		Where(sq.And{
			sq.NotEq{"remainder": nil},
			sq.Expr("btrim(remainder) <> ''"),
		}).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list pickup clients: %w", err)
	}
	var out []domain.Client
	if err := s.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list pickup clients: %w", err)
	}
	return out, nil
}

// AddPickupLog appends one pickup event. Rows are never updated or
// deleted.
func (s *Store) AddPickupLog(ctx context.Context, l domain.PickupLog) error {
	query, args, err := qb.
		Insert("pickup_logs").
		Columns("client_id", "date", "action", "remainder", "responsible").
		Values(l.ClientID, l.Date, l.Action, l.Remainder, l.Responsible).
		ToSql()
	if err != nil {
		return fmt.Errorf("add pickup log: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("add pickup log for client %d: %w", l.ClientID, err)
	}
	return nil
}
