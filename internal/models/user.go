package models

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost used by SetPassword.
var PasswordCost = bcrypt.DefaultCost

// User is a registered storefront account. Only the bcrypt hash of the
// password is ever held.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// NewUser validates the account fields and hashes password.
func NewUser(username, email, password string) (*User, error) {
	if err := checkField("username", username, MaxUsernameLen); err != nil {
		return nil, err
	}
	if err := checkField("email", email, MaxUserEmailLen); err != nil {
		return nil, err
	}

	u := &User{Username: username, Email: email}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword replaces the stored hash with a hash of password.
func (u *User) SetPassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password must not be empty", ErrInvalid)
	}
	if len(password) > MaxPasswordBytes {
		return fmt.Errorf("%w: password exceeds %d bytes", ErrInvalid, MaxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
