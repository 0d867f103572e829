package models

// Seller is a platform-wide sales agent. Sellers are not scoped to a company:
// the same seller may refer customers to any company through vouchers or
// referral links.
type Seller struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SellerInput struct {
	Name  string `json:"name" binding:"required" validate:"required"`
	Email string `json:"email" binding:"required,email" validate:"required,email"`
}
