package models

// Voucher is a seller-issued referral code scoped to exactly one company.
// Codes are unique case-insensitively and are never edited after issuance.
type Voucher struct {
	Code      string `json:"code"`
	SellerID  string `json:"seller_id"`
	CompanyID string `json:"company_id"`
}

// ReferralContext is the attribution input collected from an inbound booking
// request: a seller id carried on a referral link, a voucher code typed by
// the customer, or neither.
type ReferralContext struct {
	ExplicitSellerID string
	VoucherCode      string
	TargetCompanyID  string
}
