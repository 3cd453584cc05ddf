// Package cart is the in-memory pricing engine. A cart holds the lines a
// shopper has picked plus an optional coupon; nothing here touches the
// store. Line prices are snapshots taken when the item is added, so catalog
// edits never reprice a cart retroactively.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/krinastore/krina/internal/model"
)

// Recognized coupon codes. A stand-in for a real coupon service.
var coupons = map[string]model.Coupon{
	"SAVE10": {Code: "SAVE10", Type: model.CouponPercent, Value: decimal.NewFromInt(10)},
	"SAVE50": {Code: "SAVE50", Type: model.CouponFlat, Value: decimal.NewFromInt(50)},
}

// Cart holds one shopper's lines and coupon.
type Cart struct {
	mu     sync.Mutex
	lines  []model.CartLine
	coupon *model.Coupon
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts one unit of the item in the cart. If a line for the item already
// exists its quantity is incremented, otherwise a new line with qty 1 is
// appended, snapshotting the item's current fields.
func (c *Cart) Add(item model.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ItemID == item.ID {
			c.lines[i].Qty++
			return
		}
	}
	c.lines = append(c.lines, model.CartLine{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Unit:     item.Unit,
		Discount: item.Discount,
		Image:    item.Image,
		Qty:      1,
	})
}

// Remove deletes the line for the given item id. Absent ids are a no-op.
func (c *Cart) Remove(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity adjusts a line's quantity by delta, flooring at 1. A line
// can only be removed with Remove, never by decrementing to zero.
func (c *Cart) UpdateQuantity(itemID string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			qty := c.lines[i].Qty + delta
			if qty < 1 {
				qty = 1
			}
			c.lines[i].Qty = qty
			return
		}
	}
}

// ApplyCoupon activates the coupon for a recognized code, replacing any
// previous coupon. Unrecognized codes return false and leave the current
// coupon untouched.
func (c *Cart) ApplyCoupon(code string) bool {
	coupon, ok := coupons[code]
	if !ok {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.coupon = &coupon
	return true
}

// ClearCoupon removes the active coupon, if any.
func (c *Cart) ClearCoupon() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.coupon = nil
}

// Clear empties the cart and drops the coupon. Called after checkout.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.coupon = nil
}

// Lines returns a copy of the current cart lines.
func (c *Cart) Lines() []model.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.CartLine(nil), c.lines...)
}

// Coupon returns a copy of the active coupon, or nil.
func (c *Cart) Coupon() *model.Coupon {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.coupon == nil {
		return nil
	}
	coupon := *c.coupon
	return &coupon
}

// Totals is the priced view of a cart.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discountAmount"`
	Total    decimal.Decimal `json:"total"`
}

// Totals recomputes the cart price from live state on every call. The flat
// coupon branch is not capped to the subtotal; only the final clamp keeps
// the total from going negative.
func (c *Cart) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()

	subtotal := decimal.Zero
	for _, line := range c.lines {
		subtotal = subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Qty))))
	}

	discount := decimal.Zero
	if c.coupon != nil {
		switch c.coupon.Type {
		case model.CouponPercent:
			discount = subtotal.Mul(c.coupon.Value).Div(decimal.NewFromInt(100))
		case model.CouponFlat:
			discount = c.coupon.Value
		}
	}

	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Totals{Subtotal: subtotal, Discount: discount, Total: total}
}
