package models

import "time"

// Purchase records the contact and shipping details of a completed checkout.
type Purchase struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	IDNumber    string    `json:"id_number" db:"id_number"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
	Email       string    `json:"email" db:"email"`
	Address     string    `json:"address" db:"address"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func NewPurchase(userID int64, idNumber, phone, email, address string) (*Purchase, error) {
	if err := checkUserID(userID); err != nil {
		return nil, err
	}
	fields := []struct {
		name, value string
		max         int
	}{
		{"id_number", idNumber, MaxIDNumberLen},
		{"phone_number", phone, MaxPhoneLen},
		{"email", email, MaxPurchaseEmail},
		{"address", address, MaxAddressLen},
	}
	for _, f := range fields {
		if err := checkField(f.name, f.value, f.max); err != nil {
			return nil, err
		}
	}

	return &Purchase{
		UserID:      userID,
		IDNumber:    idNumber,
		PhoneNumber: phone,
		Email:       email,
		Address:     address,
	}, nil
}
