package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	PasswordCost = bcrypt.MinCost
}

func TestNewUserHashesPassword(t *testing.T) {
	u, err := NewUser("gamer", "gamer@example.com", "s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pass", u.PasswordHash)
	assert.True(t, u.CheckPassword("s3cret-pass"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestCheckPasswordWithoutHash(t *testing.T) {
	u := &User{Username: "nohash"}
	assert.False(t, u.CheckPassword(""))
}

func TestNewUserValidation(t *testing.T) {
	_, err := NewUser("", "a@b.c", "password")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = NewUser(strings.Repeat("x", MaxUsernameLen+1), "a@b.c", "password")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = NewUser("gamer", "a@b.c", "")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestNewCartItem(t *testing.T) {
	item, err := NewCartItem(7, "HyperX Cloud Stinger 2", "139")
	require.NoError(t, err)
	assert.Equal(t, &CartItem{UserID: 7, ProductName: "HyperX Cloud Stinger 2", Price: "139"}, item)

	_, err = NewCartItem(0, "HyperX Cloud Stinger 2", "139")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = NewCartItem(7, "HyperX Cloud Stinger 2", "")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestNewPurchase(t *testing.T) {
	p, err := NewPurchase(3, "ABC12345", "123456789", "buyer@example.com", "1 Main Street")
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.UserID)
	assert.Equal(t, "1 Main Street", p.Address)

	_, err = NewPurchase(3, strings.Repeat("9", MaxIDNumberLen+1), "123456789", "buyer@example.com", "1 Main Street")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = NewPurchase(3, "ABC12345", "123456789", "buyer@example.com", "")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestSetPasswordByteLimit(t *testing.T) {
	_, err := NewUser("gamer", "gamer@example.com", strings.Repeat("é", 40))
	assert.ErrorIs(t, err, ErrInvalid)

	u, err := NewUser("gamer", "gamer@example.com", strings.Repeat("é", 36))
	require.NoError(t, err)
	assert.True(t, u.CheckPassword(strings.Repeat("é", 36)))
}

func TestNewOrder(t *testing.T) {
	o, err := NewOrder(7, "12345678901", "123456789", "buyer@example.com", "1 Main Street")
	require.NoError(t, err)
	assert.Equal(t, int64(7), o.UserID)

	_, err = NewOrder(7, "123456789012", "123456789", "buyer@example.com", "1 Main Street")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = NewOrder(7, "12345678901", "1234567890", "buyer@example.com", "1 Main Street")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = NewOrder(0, "12345678901", "123456789", "buyer@example.com", "1 Main Street")
	assert.ErrorIs(t, err, ErrInvalid)
}
