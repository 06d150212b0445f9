package models

import "time"

// Order mirrors the legacy orders table. Its columns are narrower than
// purchases and no storefront flow writes it.
type Order struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	IDNumber    string    `json:"id_number" db:"id_number"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
	Email       string    `json:"email" db:"email"`
	Address     string    `json:"address" db:"address"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func NewOrder(userID int64, idNumber, phone, email, address string) (*Order, error) {
	if err := checkUserID(userID); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		name, value string
		max         int
	}{
		{"id_number", idNumber, MaxOrderIDNumberLen},
		{"phone_number", phone, MaxOrderPhoneLen},
		{"email", email, MaxPurchaseEmail},
		{"address", address, MaxOrderAddressLen},
	} {
		if err := checkField(f.name, f.value, f.max); err != nil {
			return nil, err
		}
	}

	return &Order{
		UserID:      userID,
		IDNumber:    idNumber,
		PhoneNumber: phone,
		Email:       email,
		Address:     address,
	}, nil
}
