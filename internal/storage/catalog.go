package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"skladbot/internal/domain"
)

// SearchProducts matches a case-insensitive substring against sort,
// name and article, newest first.
func (s *Store) SearchProducts(ctx context.Context, search string) ([]domain.Product, error) {
	like := likePattern(search)
	query, args, err := qb.
		Select("id", "sort", "name", "article").
		From("products").
		Where(sq.Or{
			sq.Like{"lower(sort)": like},
			sq.Like{"lower(name)": like},
			sq.Like{"lower(article)": like},
		}).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	var out []domain.Product
	if err := s.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("search products %q: %w", search, err)
	}
	return out, nil
}

// SearchStands matches against stand_name, size, article and the
// mounted tiles description.
func (s *Store) SearchStands(ctx context.Context, search string) ([]domain.Stand, error) {
	like := likePattern(search)
	query, args, err := qb.
		Select("id", "stand_name", "size", "article", "tiles_text").
		From("stands").
		Where(sq.Or{
			sq.Like{"lower(stand_name)": like},
			sq.Like{"lower(size)": like},
			sq.Like{"lower(article)": like},
			sq.Like{"lower(tiles_text)": like},
		}).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("search stands: %w", err)
	}
	var out []domain.Stand
	if err := s.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("search stands %q: %w", search, err)
	}
	return out, nil
}
