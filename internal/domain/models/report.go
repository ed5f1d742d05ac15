package models

import "time"

// DailyReport is the aggregated warehouse snapshot persisted by the
// reporting service once per day.
type DailyReport struct {
	Date            time.Time `bson:"date" json:"date"`
	TotalProducts   int       `bson:"total_products" json:"total_products"`
	LowStock        int       `bson:"low_stock" json:"low_stock"`
	OutOfStock      int       `bson:"out_of_stock" json:"out_of_stock"`
	StockValue      float64   `bson:"stock_value" json:"stock_value"`
	EntriesCount    int       `bson:"entries_count" json:"entries_count"`
	EntriesValue    float64   `bson:"entries_value" json:"entries_value"`
	ExitsCount      int       `bson:"exits_count" json:"exits_count"`
	ExitsValue      float64   `bson:"exits_value" json:"exits_value"`
	UrgentExits     int       `bson:"urgent_exits" json:"urgent_exits"`
	ActiveSuppliers int       `bson:"active_suppliers" json:"active_suppliers"`
	SupplierRating  float64   `bson:"supplier_rating" json:"supplier_rating"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
