// Package store reads and writes storefront entities. Every cart operation is
// scoped by user id; users and purchases are insert-only.
package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/matthieukhl/gearshop/internal/database"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *database.DB
}

func New(db *database.DB) *Store {
	return &Store{db: db}
}

// translate maps driver errors onto the package sentinels.
func translate(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return ErrDuplicate
	}
	return err
}

// TableCounts holds row counts per storefront table.
type TableCounts struct {
	Users     int64
	CartItems int64
	Purchases int64
	Orders    int64
}

// Counts returns the number of rows in each storefront table.
func (s *Store) Counts(ctx context.Context) (TableCounts, error) {
	var c TableCounts
	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM cart_items),
			(SELECT COUNT(*) FROM purchases),
			(SELECT COUNT(*) FROM orders)
	`).Scan(&c.Users, &c.CartItems, &c.Purchases, &c.Orders)
	if err != nil {
		return TableCounts{}, err
	}
	return c, nil
}
