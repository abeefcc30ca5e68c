package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"skladbot/internal/domain"
)

// GetUser returns ErrNotFound for users who never contacted the bot.
func (s *Store) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	query, args, err := qb.
		Select("user_id", "name", "role", "lang").
		From("users").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	var u domain.User
	if err := s.db.GetContext(ctx, &u, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}
	return &u, nil
}

// UpsertUser inserts the user or overwrites name, role and lang.
func (s *Store) UpsertUser(ctx context.Context, u domain.User) error {
	query, args, err := qb.
		Insert("users").
		Columns("user_id", "name", "role", "lang").
		Values(u.ID, u.Name, u.Role, u.Lang).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET name = EXCLUDED.name, role = EXCLUDED.role, lang = EXCLUDED.lang").
		ToSql()
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert user %d: %w", u.ID, err)
	}
	return nil
}

// UpdateUserRole is a no-op when the user does not exist.
func (s *Store) UpdateUserRole(ctx context.Context, userID int64, role domain.Role) error {
	query, args, err := qb.
		Update("users").
		Set("role", role).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("update user role: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update role for user %d: %w", userID, err)
	}
	return nil
}

func (s *Store) UpdateUserLang(ctx context.Context, userID int64, lang string) error {
	query, args, err := qb.
		Update("users").
		Set("lang", lang).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("update user lang: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update lang for user %d: %w", userID, err)
	}
	return nil
}
