package models

// StockStats summarizes the item collection for the stock header.
type StockStats struct {
	TotalProducts int     `json:"total_products"`
	InStock       int     `json:"in_stock"`
	LowStock      int     `json:"low_stock"`
	OutOfStock    int     `json:"out_of_stock"`
	Overstocked   int     `json:"overstocked"`
	TotalValue    float64 `json:"total_value"`
}

// EntryStats summarizes the entry collection. TotalValue excludes
// cancelled receipts; the per-status counts do not.
type EntryStats struct {
	TotalEntries int     `json:"total_entries"`
	Pending      int     `json:"pending"`
	Validated    int     `json:"validated"`
	Received     int     `json:"received"`
	Cancelled    int     `json:"cancelled"`
	TotalValue   float64 `json:"total_value"`
}

// ExitStats summarizes the exit collection. TotalValue excludes
// cancelled shipments; the per-status counts do not.
type ExitStats struct {
	TotalExits int     `json:"total_exits"`
	Pending    int     `json:"pending"`
	Prepared   int     `json:"prepared"`
	Shipped    int     `json:"shipped"`
	Delivered  int     `json:"delivered"`
	Cancelled  int     `json:"cancelled"`
	Urgent     int     `json:"urgent"`
	TotalValue float64 `json:"total_value"`
}

// SupplierStats summarizes the supplier collection. AverageRating is 0
// when there are no suppliers.
type SupplierStats struct {
	TotalSuppliers int     `json:"total_suppliers"`
	Active         int     `json:"active"`
	Inactive       int     `json:"inactive"`
	Pending        int     `json:"pending"`
	Blocked        int     `json:"blocked"`
	TotalValue     float64 `json:"total_value"`
	AverageRating  float64 `json:"average_rating"`
}
