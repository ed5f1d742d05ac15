// Package stats computes the aggregate figures shown in the screen
// headers. All functions are pure and safe on empty collections.
package stats

import "github.com/babetech/borastock/internal/domain/models"

// ComputeStockStats aggregates the item collection.
func ComputeStockStats(items []models.StockItem) models.StockStats {
	s := models.StockStats{TotalProducts: len(items)}
	for _, it := range items {
		switch it.Status {
		case models.StockInStock:
			s.InStock++
		case models.StockLowStock:
			s.LowStock++
		case models.StockOutOfStock:
			s.OutOfStock++
		case models.StockOverstocked:
			s.Overstocked++
		}
		s.TotalValue += it.TotalValue()
	}
	return s
}

// ComputeEntryStats aggregates the entry collection. Cancelled receipts
// count toward the totals but are excluded from the monetary sum.
func ComputeEntryStats(entries []models.StockEntry) models.EntryStats {
	s := models.EntryStats{TotalEntries: len(entries)}
	for _, e := range entries {
		switch e.Status {
		case models.EntryPending:
			s.Pending++
		case models.EntryValidated:
			s.Validated++
		case models.EntryReceived:
			s.Received++
		case models.EntryCancelled:
			s.Cancelled++
		}
		if e.Status != models.EntryCancelled {
			s.TotalValue += e.TotalValue
		}
	}
	return s
}

// ComputeExitStats aggregates the exit collection. Cancelled shipments
// count toward the totals but are excluded from the monetary sum.
func ComputeExitStats(exits []models.StockExit) models.ExitStats {
	s := models.ExitStats{TotalExits: len(exits)}
	for _, e := range exits {
		switch e.Status {
		case models.ExitPending:
			s.Pending++
		case models.ExitPrepared:
			s.Prepared++
		case models.ExitShipped:
			s.Shipped++
		case models.ExitDelivered:
			s.Delivered++
		case models.ExitCancelled:
			s.Cancelled++
		}
		if e.Urgency == models.UrgencyHigh {
			s.Urgent++
		}
		if e.Status != models.ExitCancelled {
			s.TotalValue += e.TotalValue
		}
	}
	return s
}

// ComputeSupplierStats aggregates the supplier collection. The average
// rating is 0 when there are no suppliers.
func ComputeSupplierStats(suppliers []models.Supplier) models.SupplierStats {
	s := models.SupplierStats{TotalSuppliers: len(suppliers)}
	var ratingSum float64
	for _, sp := range suppliers {
		switch sp.Status {
		case models.SupplierActive:
			s.Active++
		case models.SupplierInactive:
			s.Inactive++
		case models.SupplierPending:
			s.Pending++
		case models.SupplierBlocked:
			s.Blocked++
		}
		s.TotalValue += sp.TotalValue
		ratingSum += sp.Rating
	}
	if len(suppliers) > 0 {
		s.AverageRating = ratingSum / float64(len(suppliers))
	}
	return s
}
