package model

import "github.com/shopspring/decimal"

// Coupon is a discount applied to a cart. A cart holds at most one coupon;
// applying a new one replaces the old.
type Coupon struct {
	Code  string          `json:"code"`
	Type  string          `json:"type"`
	Value decimal.Decimal `json:"value"`
}

// Coupon types.
const (
	CouponPercent = "percent"
	CouponFlat    = "flat"
)
