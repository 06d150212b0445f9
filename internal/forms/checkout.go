package forms

// BuyForm collects the contact and shipping details recorded with a purchase.
type BuyForm struct {
	IDNumber    string `form:"id_number" binding:"required,alphanum,min=5,max=20"`
	PhoneNumber string `form:"phone_number" binding:"required,number,min=9,max=15"`
	Email       string `form:"email" binding:"required,email,max=120"`
	Address     string `form:"address" binding:"required,min=5,max=200"`
}
