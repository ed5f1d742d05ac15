package models

import "time"

// StockStatus classifies an item's stock level against its thresholds.
type StockStatus string

const (
	StockInStock     StockStatus = "IN_STOCK"
	StockLowStock    StockStatus = "LOW_STOCK"
	StockOutOfStock  StockStatus = "OUT_OF_STOCK"
	StockOverstocked StockStatus = "OVERSTOCKED"
)

// Label returns the display label used across the product.
func (s StockStatus) Label() string {
	switch s {
	case StockInStock:
		return "En stock"
	case StockLowStock:
		return "Stock faible"
	case StockOutOfStock:
		return "Rupture"
	case StockOverstocked:
		return "Surstock"
	default:
		return string(s)
	}
}

// StockStatusForLevels derives the status from the stock thresholds.
// The status is never stored independently of the levels, so it cannot drift.
func StockStatusForLevels(current, min, max int) StockStatus {
	switch {
	case current <= 0:
		return StockOutOfStock
	case current <= min:
		return StockLowStock
	case max > 0 && current >= max:
		return StockOverstocked
	default:
		return StockInStock
	}
}

// StockItem is a catalogued product with its stock levels.
type StockItem struct {
	ID           string      `json:"id" bson:"_id"`
	Name         string      `json:"name" bson:"name"`
	Category     string      `json:"category" bson:"category"`
	CurrentStock int         `json:"current_stock" bson:"current_stock"`
	MinStock     int         `json:"min_stock" bson:"min_stock"`
	MaxStock     int         `json:"max_stock" bson:"max_stock"`
	Price        float64     `json:"price" bson:"price"`
	Supplier     string      `json:"supplier" bson:"supplier"`
	LastUpdate   time.Time   `json:"last_update" bson:"last_update"`
	Status       StockStatus `json:"status" bson:"status"`
}

// StockPercentage reports the fill level against MaxStock, clamped to [0, 1].
func (i StockItem) StockPercentage() float64 {
	if i.MaxStock <= 0 {
		return 0
	}
	p := float64(i.CurrentStock) / float64(i.MaxStock)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// TotalValue is the monetary value of the stock on hand.
func (i StockItem) TotalValue() float64 {
	return float64(i.CurrentStock) * i.Price
}
