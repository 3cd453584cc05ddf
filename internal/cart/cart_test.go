package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/krinastore/krina/internal/model"
)

func rice() model.Item {
	return model.Item{ID: "rice", Name: "Rice", Price: decimal.NewFromInt(100), Unit: model.UnitKg}
}

func dal() model.Item {
	return model.Item{ID: "dal", Name: "Dal", Price: decimal.NewFromInt(30), Unit: model.UnitKg}
}

func TestAddMergesLines(t *testing.T) {
	c := New()
	c.Add(rice())
	c.Add(rice())

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Qty != 2 {
		t.Errorf("expected qty 2, got %d", lines[0].Qty)
	}
}

func TestAddSnapshotsPrice(t *testing.T) {
	c := New()
	item := rice()
	c.Add(item)

	// Catalog price changes after the line was added.
	item.Price = decimal.NewFromInt(999)

	lines := c.Lines()
	if !lines[0].Price.Equal(decimal.NewFromInt(100)) {
		t.Errorf("line price should be snapshotted at 100, got %s", lines[0].Price)
	}
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(rice())
	c.Add(dal())

	c.Remove("rice")
	lines := c.Lines()
	if len(lines) != 1 || lines[0].ItemID != "dal" {
		t.Fatalf("expected only dal, got %+v", lines)
	}

	// Absent id is a no-op.
	c.Remove("nope")
	if len(c.Lines()) != 1 {
		t.Error("no-op remove changed the cart")
	}
}

func TestUpdateQuantityFloorsAtOne(t *testing.T) {
	c := New()
	c.Add(rice())

	c.UpdateQuantity("rice", 3)
	if got := c.Lines()[0].Qty; got != 4 {
		t.Errorf("expected qty 4, got %d", got)
	}

	c.UpdateQuantity("rice", -10)
	if got := c.Lines()[0].Qty; got != 1 {
		t.Errorf("expected qty floored at 1, got %d", got)
	}

	// The line is still there: decrementing can never remove it.
	if len(c.Lines()) != 1 {
		t.Error("decrement removed the line")
	}
}

func TestCartInvariants(t *testing.T) {
	c := New()

	// An arbitrary sequence of operations never produces qty < 1 or
	// duplicate lines for the same item id.
	c.Add(rice())
	c.Add(dal())
	c.Add(rice())
	c.UpdateQuantity("rice", -5)
	c.UpdateQuantity("dal", 2)
	c.Remove("dal")
	c.Add(dal())
	c.UpdateQuantity("nope", -1)

	seen := make(map[string]bool)
	for _, line := range c.Lines() {
		if line.Qty < 1 {
			t.Errorf("line %s has qty %d", line.ItemID, line.Qty)
		}
		if seen[line.ItemID] {
			t.Errorf("duplicate line for %s", line.ItemID)
		}
		seen[line.ItemID] = true
	}
}

func TestTotalsPercentCoupon(t *testing.T) {
	c := New()
	c.Add(rice())
	c.UpdateQuantity("rice", 1) // qty 2, subtotal 200

	if !c.ApplyCoupon("SAVE10") {
		t.Fatal("SAVE10 should be recognized")
	}

	totals := c.Totals()
	if !totals.Subtotal.Equal(decimal.NewFromInt(200)) {
		t.Errorf("subtotal: expected 200, got %s", totals.Subtotal)
	}
	if !totals.Discount.Equal(decimal.NewFromInt(20)) {
		t.Errorf("discount: expected 20, got %s", totals.Discount)
	}
	if !totals.Total.Equal(decimal.NewFromInt(180)) {
		t.Errorf("total: expected 180, got %s", totals.Total)
	}
}

func TestTotalsFlatCouponClampsAtZero(t *testing.T) {
	c := New()
	c.Add(dal()) // subtotal 30

	if !c.ApplyCoupon("SAVE50") {
		t.Fatal("SAVE50 should be recognized")
	}

	totals := c.Totals()
	if !totals.Discount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("flat discount is not capped: expected 50, got %s", totals.Discount)
	}
	if !totals.Total.Equal(decimal.Zero) {
		t.Errorf("total: expected 0 (clamped), got %s", totals.Total)
	}
}

func TestUnknownCouponLeavesCurrentUntouched(t *testing.T) {
	c := New()
	c.Add(rice())
	c.ApplyCoupon("SAVE10")

	if c.ApplyCoupon("BOGUS") {
		t.Error("BOGUS should not be recognized")
	}

	coupon := c.Coupon()
	if coupon == nil || coupon.Code != "SAVE10" {
		t.Errorf("previous coupon should survive, got %+v", coupon)
	}
}

func TestClearCoupon(t *testing.T) {
	c := New()
	c.ApplyCoupon("SAVE10")
	c.ClearCoupon()
	if c.Coupon() != nil {
		t.Error("expected no coupon after ClearCoupon")
	}
}

func TestTotalsIsPure(t *testing.T) {
	c := New()
	c.Add(rice())
	c.ApplyCoupon("SAVE10")

	first := c.Totals()
	second := c.Totals()
	if !first.Subtotal.Equal(second.Subtotal) || !first.Discount.Equal(second.Discount) || !first.Total.Equal(second.Total) {
		t.Errorf("Totals not idempotent: %+v vs %+v", first, second)
	}
}

func TestClearEmptiesEverything(t *testing.T) {
	c := New()
	c.Add(rice())
	c.ApplyCoupon("SAVE10")

	c.Clear()
	if len(c.Lines()) != 0 {
		t.Error("expected no lines after Clear")
	}
	if c.Coupon() != nil {
		t.Error("expected no coupon after Clear")
	}
	if !c.Totals().Total.Equal(decimal.Zero) {
		t.Error("expected zero total after Clear")
	}
}

func TestRegistryOneCartPerUser(t *testing.T) {
	r := NewRegistry()

	a := r.Cart("customer")
	b := r.Cart("customer")
	if a != b {
		t.Error("expected the same cart for the same user")
	}

	other := r.Cart("seller")
	if other == a {
		t.Error("expected distinct carts for distinct users")
	}
}
