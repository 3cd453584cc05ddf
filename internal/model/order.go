package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one item-and-quantity entry in a cart. The item fields are a
// snapshot taken when the line was added, so later catalog edits do not
// affect carts or historical orders.
type CartLine struct {
	ItemID   string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Unit     string          `json:"unit"`
	Discount decimal.Decimal `json:"discount"`
	Image    string          `json:"image,omitempty"`
	Qty      int             `json:"qty"`
}

// Order is a placed order. Items and total are frozen at creation time;
// only status and administrative fields change afterwards.
type Order struct {
	ID             string          `json:"id"`
	Items          []CartLine      `json:"items"`
	Total          decimal.Decimal `json:"total"`
	Discount       decimal.Decimal `json:"discount"`
	DeliveryCharge decimal.Decimal `json:"deliveryCharge"`
	Address        string          `json:"address"`
	PaymentMethod  string          `json:"paymentMethod"`
	UserID         string          `json:"userId"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Order statuses. Every order starts as placed.
const (
	StatusPlaced    = "placed"
	StatusConfirmed = "confirmed"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether status is a known order status.
func ValidStatus(status string) bool {
	switch status {
	case StatusPlaced, StatusConfirmed, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Payment methods.
const (
	PaymentCOD = "cod"
	PaymentUPI = "upi"
)

// ValidPaymentMethod reports whether method is a known payment method.
func ValidPaymentMethod(method string) bool {
	return method == PaymentCOD || method == PaymentUPI
}
