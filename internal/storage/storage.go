// Package storage is the Postgres persistence layer. Every operation
// is a single statement; there are no multi-statement transactions.
package storage

import (
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("storage: not found")

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Store runs all queries against a single sqlx pool.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// likePattern builds the case-insensitive substring pattern used by
// every search operation.
func likePattern(query string) string {
	return "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
}
