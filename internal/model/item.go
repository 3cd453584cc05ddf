package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item represents a catalog entry managed by the seller.
type Item struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Unit      string          `json:"unit"`
	Discount  decimal.Decimal `json:"discount"`
	Image     string          `json:"image,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Units of measure.
const (
	UnitKg    = "kg"
	UnitGm    = "gm"
	UnitLitre = "litre"
	UnitMl    = "ml"
	UnitPack  = "pack"
	UnitPc    = "pc"
	UnitNone  = "none"
)

// DefaultUnit is used when an item is created without a unit.
const DefaultUnit = UnitKg

// ValidUnit reports whether unit is one of the known units of measure.
func ValidUnit(unit string) bool {
	switch unit {
	case UnitKg, UnitGm, UnitLitre, UnitMl, UnitPack, UnitPc, UnitNone:
		return true
	}
	return false
}
