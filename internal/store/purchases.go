package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/matthieukhl/gearshop/internal/models"
)

// CreatePurchase inserts p on its own, without touching the cart.
func (s *Store) CreatePurchase(ctx context.Context, p *models.Purchase) error {
	return insertPurchase(ctx, s.db, p)
}

// Checkout records p and empties the buyer's cart in a single transaction,
// so a failure in either step leaves both tables as they were. It returns the
// number of cart items removed.
func (s *Store) Checkout(ctx context.Context, p *models.Purchase) (int64, error) {
	var cleared int64
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := insertPurchase(ctx, tx, p); err != nil {
			return err
		}
		n, err := clearCart(ctx, tx, p.UserID)
		if err != nil {
			return err
		}
		cleared = n
		return nil
	})
	if err != nil {
		p.ID = 0
		return 0, err
	}
	return cleared, nil
}

func insertPurchase(ctx context.Context, q querier, p *models.Purchase) error {
	res, err := q.ExecContext(ctx, `
		INSERT INTO purchases (user_id, id_number, phone_number, email, address)
		VALUES (?, ?, ?, ?, ?)
	`, p.UserID, p.IDNumber, p.PhoneNumber, p.Email, p.Address)
	if err != nil {
		return fmt.Errorf("failed to insert purchase: %w", translate(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read purchase id: %w", err)
	}
	p.ID = id
	return nil
}

// PurchasesByUser lists a user's purchases, newest first.
func (s *Store) PurchasesByUser(ctx context.Context, userID int64, limit int) ([]models.Purchase, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, id_number, phone_number, email, address, created_at
		FROM purchases
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []models.Purchase
	for rows.Next() {
		var p models.Purchase
		if err := rows.Scan(&p.ID, &p.UserID, &p.IDNumber, &p.PhoneNumber, &p.Email, &p.Address, &p.CreatedAt); err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}

	return purchases, rows.Err()
}
