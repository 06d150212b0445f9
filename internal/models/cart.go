package models

import "time"

// CartItem links a user to a catalog entry's name and price until checkout.
type CartItem struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	ProductName string    `json:"product_name" db:"product_name"`
	Price       string    `json:"price" db:"price"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func NewCartItem(userID int64, productName, price string) (*CartItem, error) {
	if err := checkUserID(userID); err != nil {
		return nil, err
	}
	if err := checkField("product_name", productName, MaxProductNameLen); err != nil {
		return nil, err
	}
	if err := checkField("price", price, MaxPriceLen); err != nil {
		return nil, err
	}
	return &CartItem{UserID: userID, ProductName: productName, Price: price}, nil
}
