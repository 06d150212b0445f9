package store

import (
	"context"
	"fmt"

	"github.com/matthieukhl/gearshop/internal/models"
)

// AddCartItem inserts item and sets its ID. Adding the same entry twice
// produces two rows.
func (s *Store) AddCartItem(ctx context.Context, item *models.CartItem) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO cart_items (user_id, product_name, price)
		VALUES (?, ?, ?)
	`, item.UserID, item.ProductName, item.Price)
	if err != nil {
		return fmt.Errorf("failed to insert cart item: %w", translate(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read cart item id: %w", err)
	}
	item.ID = id
	return nil
}

// CartItems lists a user's cart in insertion order.
func (s *Store) CartItems(ctx context.Context, userID int64) ([]models.CartItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, product_name, price, created_at
		FROM cart_items
		WHERE user_id = ?
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var it models.CartItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.ProductName, &it.Price, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// CartSummary counts the items in a user's cart and reports whether the
// user still exists. A session can outlive its account.
func (s *Store) CartSummary(ctx context.Context, userID int64) (count int, found bool, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE id = ?),
			(SELECT COUNT(*) FROM cart_items WHERE user_id = ?)
	`, userID, userID).Scan(&found, &count)
	if err != nil {
		return 0, false, err
	}
	return count, found, nil
}

// ClearCart deletes every cart item owned by userID and returns how many
// rows went away. Other users' items are untouched.
func (s *Store) ClearCart(ctx context.Context, userID int64) (int64, error) {
	return clearCart(ctx, s.db, userID)
}

func clearCart(ctx context.Context, q querier, userID int64) (int64, error) {
	res, err := q.ExecContext(ctx, "DELETE FROM cart_items WHERE user_id = ?", userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}
	return res.RowsAffected()
}
