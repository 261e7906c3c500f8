package models

import "time"

// Voucher types issuable on an approved review.
const (
	VoucherCinema10 = "cinema_10"
	VoucherCoffee5  = "coffee_5"
	VoucherAmazon10 = "amazon_10"
)

// VoucherStatusIssued is the only status in scope; redemption is handled
// elsewhere.
const VoucherStatusIssued = "issued"

var voucherTypeLabels = map[string]string{
	VoucherCinema10: "Cinema £10",
	VoucherCoffee5:  "Coffee £5",
	VoucherAmazon10: "Amazon £10",
}

// IsValidVoucherType reports whether t is one of the issuable types.
func IsValidVoucherType(t string) bool {
	_, ok := voucherTypeLabels[t]
	return ok
}

// VoucherTypeLabel returns the display label for a voucher type.
func VoucherTypeLabel(t string) string {
	if label, ok := voucherTypeLabels[t]; ok {
		return label
	}
	return t
}

// Voucher represents the vouchers table. Exactly one voucher exists per
// approved review; the review holds the forward reference in voucher_id.
type Voucher struct {
	VoucherID        int       `gorm:"primaryKey;column:voucher_id" json:"voucher_id"`
	TenantID         int       `gorm:"column:tenant_id" json:"tenant_id"`
	PropertyReviewID int       `gorm:"column:property_review_id" json:"property_review_id"`
	VoucherType      string    `gorm:"column:voucher_type" json:"voucher_type"`
	VoucherCode      string    `gorm:"column:voucher_code" json:"voucher_code"`
	IssuedByID       int       `gorm:"column:issued_by_id" json:"issued_by_id"`
	IssuedAt         time.Time `gorm:"column:issued_at" json:"issued_at"`
	Status           string    `gorm:"column:status" json:"status"`
}

// TableName specifies the table name for Voucher.
func (Voucher) TableName() string {
	return "vouchers"
}
