package store

import (
	"context"
	"fmt"

	"github.com/matthieukhl/gearshop/internal/models"
)

const userColumns = "id, username, email, password_hash, created_at"

// CreateUser inserts u and sets its ID. A username or email that already
// exists yields ErrDuplicate.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO users (username, email, password_hash)
		VALUES (?, ?, ?)
	`, u.Username, u.Email, u.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", translate(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	u.ID = id
	return nil
}

func (s *Store) UserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userWhere(ctx, "id = ?", id)
}

func (s *Store) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.userWhere(ctx, "username = ?", username)
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userWhere(ctx, "email = ?", email)
}

func (s *Store) userWhere(ctx context.Context, cond string, arg any) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE "+cond+" LIMIT 1", arg,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// UsernameExists reports whether a user already holds username.
func (s *Store) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.exists(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)", username)
}

// EmailExists reports whether a user already holds email.
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)", email)
}

func (s *Store) exists(ctx context.Context, query string, arg any) (bool, error) {
	var found bool
	if err := s.db.QueryRowContext(ctx, query, arg).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}
