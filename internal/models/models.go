package models

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalid is wrapped by every constructor-time validation failure.
var ErrInvalid = errors.New("invalid field")

// Column widths shared with the database schema.
const (
	MaxUsernameLen     = 150
	MaxUserEmailLen    = 150
	MaxPasswordHashLen = 200
	MaxProductNameLen  = 150
	MaxPriceLen        = 50
	MaxIDNumberLen     = 20
	MaxPhoneLen        = 15
	MaxPurchaseEmail   = 120
	MaxAddressLen      = 200

	MaxOrderIDNumberLen = 11
	MaxOrderPhoneLen    = 9
	MaxOrderAddressLen  = 255
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

func checkField(name, value string, max int) error {
	if value == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalid, name)
	}
	if utf8.RuneCountInString(value) > max {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrInvalid, name, max)
	}
	return nil
}

func checkUserID(userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("%w: user_id must be positive", ErrInvalid)
	}
	return nil
}
