// Package stockview derives the filtered, sorted projections the clients
// render. Everything in this package is a pure function of its inputs:
// the same collection and query always produce the same list.
package stockview

import (
	"sort"
	"strings"

	"github.com/babetech/borastock/internal/domain/models"
)

// ItemQuery is the query state of the stock screen.
type ItemQuery struct {
	Search string
	Filter models.ItemFilter
	Sort   models.ItemSort
}

// EntryQuery is the query state of the entries screen.
type EntryQuery struct {
	Search string
	Filter models.EntryFilter
	Sort   models.EntrySort
}

// ExitQuery is the query state of the exits screen.
type ExitQuery struct {
	Search string
	Filter models.ExitFilter
	Sort   models.ExitSort
}

// SupplierQuery is the query state of the suppliers screen.
type SupplierQuery struct {
	Search string
	Filter models.SupplierFilter
	Sort   models.SupplierSort
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// MatchItem reports whether the item survives both the free-text search
// and the status filter. An empty search matches everything.
func MatchItem(item models.StockItem, q ItemQuery) bool {
	matchesSearch := containsFold(item.Name, q.Search) ||
		containsFold(item.Category, q.Search) ||
		containsFold(item.Supplier, q.Search)

	var matchesFilter bool
	switch q.Filter {
	case models.ItemFilterInStock:
		matchesFilter = item.Status == models.StockInStock
	case models.ItemFilterLowStock:
		matchesFilter = item.Status == models.StockLowStock
	case models.ItemFilterOutOfStock:
		matchesFilter = item.Status == models.StockOutOfStock
	case models.ItemFilterOverstocked:
		matchesFilter = item.Status == models.StockOverstocked
	default:
		matchesFilter = true
	}
	return matchesSearch && matchesFilter
}

// DeriveItems returns the stock screen projection of items.
func DeriveItems(items []models.StockItem, q ItemQuery) []models.StockItem {
	out := make([]models.StockItem, 0, len(items))
	for _, it := range items {
		if MatchItem(it, q) {
			out = append(out, it)
		}
	}
	switch q.Sort {
	case models.ItemSortName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case models.ItemSortStock:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CurrentStock < out[j].CurrentStock })
	case models.ItemSortPrice:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case models.ItemSortStatus:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Status.Label() < out[j].Status.Label() })
	}
	return out
}

// MatchEntry reports whether the receipt survives both predicates.
func MatchEntry(entry models.StockEntry, q EntryQuery) bool {
	matchesSearch := containsFold(entry.ProductName, q.Search) ||
		containsFold(entry.Category, q.Search) ||
		containsFold(entry.Supplier, q.Search) ||
		containsFold(entry.BatchNumber, q.Search)

	var matchesFilter bool
	switch q.Filter {
	case models.EntryFilterPending:
		matchesFilter = entry.Status == models.EntryPending
	case models.EntryFilterValidated:
		matchesFilter = entry.Status == models.EntryValidated
	case models.EntryFilterReceived:
		matchesFilter = entry.Status == models.EntryReceived
	case models.EntryFilterCancelled:
		matchesFilter = entry.Status == models.EntryCancelled
	default:
		matchesFilter = true
	}
	return matchesSearch && matchesFilter
}

// DeriveEntries returns the entries screen projection of entries.
func DeriveEntries(entries []models.StockEntry, q EntryQuery) []models.StockEntry {
	out := make([]models.StockEntry, 0, len(entries))
	for _, e := range entries {
		if MatchEntry(e, q) {
			out = append(out, e)
		}
	}
	switch q.Sort {
	case models.EntrySortDate:
		sort.SliceStable(out, func(i, j int) bool { return out[i].EntryDate.After(out[j].EntryDate) })
	case models.EntrySortProduct:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ProductName < out[j].ProductName })
	case models.EntrySortQuantity:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })
	case models.EntrySortValue:
		sort.SliceStable(out, func(i, j int) bool { return out[i].TotalValue > out[j].TotalValue })
	case models.EntrySortStatus:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Status.Label() < out[j].Status.Label() })
	}
	return out
}

// MatchExit reports whether the shipment survives both predicates.
func MatchExit(exit models.StockExit, q ExitQuery) bool {
	matchesSearch := containsFold(exit.ProductName, q.Search) ||
		containsFold(exit.Category, q.Search) ||
		containsFold(exit.Customer, q.Search) ||
		containsFold(exit.OrderNumber, q.Search)

	var matchesFilter bool
	switch q.Filter {
	case models.ExitFilterPending:
		matchesFilter = exit.Status == models.ExitPending
	case models.ExitFilterPrepared:
		matchesFilter = exit.Status == models.ExitPrepared
	case models.ExitFilterShipped:
		matchesFilter = exit.Status == models.ExitShipped
	case models.ExitFilterDelivered:
		matchesFilter = exit.Status == models.ExitDelivered
	case models.ExitFilterCancelled:
		matchesFilter = exit.Status == models.ExitCancelled
	default:
		matchesFilter = true
	}
	return matchesSearch && matchesFilter
}

// DeriveExits returns the exits screen projection of exits.
func DeriveExits(exits []models.StockExit, q ExitQuery) []models.StockExit {
	out := make([]models.StockExit, 0, len(exits))
	for _, e := range exits {
		if MatchExit(e, q) {
			out = append(out, e)
		}
	}
	switch q.Sort {
	case models.ExitSortDate:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ExitDate.After(out[j].ExitDate) })
	case models.ExitSortProduct:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ProductName < out[j].ProductName })
	case models.ExitSortCustomer:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Customer < out[j].Customer })
	case models.ExitSortQuantity:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })
	case models.ExitSortValue:
		sort.SliceStable(out, func(i, j int) bool { return out[i].TotalValue > out[j].TotalValue })
	case models.ExitSortStatus:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Status.Label() < out[j].Status.Label() })
	case models.ExitSortUrgency:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Urgency.Rank() > out[j].Urgency.Rank() })
	}
	return out
}

// MatchSupplier reports whether the supplier survives both predicates.
func MatchSupplier(supplier models.Supplier, q SupplierQuery) bool {
	matchesSearch := containsFold(supplier.Name, q.Search) ||
		containsFold(supplier.Category, q.Search) ||
		containsFold(supplier.ContactPerson, q.Search) ||
		containsFold(supplier.City, q.Search)

	var matchesFilter bool
	switch q.Filter {
	case models.SupplierFilterActive:
		matchesFilter = supplier.Status == models.SupplierActive
	case models.SupplierFilterInactive:
		matchesFilter = supplier.Status == models.SupplierInactive
	case models.SupplierFilterPending:
		matchesFilter = supplier.Status == models.SupplierPending
	case models.SupplierFilterBlocked:
		matchesFilter = supplier.Status == models.SupplierBlocked
	default:
		matchesFilter = true
	}
	return matchesSearch && matchesFilter
}

// DeriveSuppliers returns the suppliers screen projection of suppliers.
func DeriveSuppliers(suppliers []models.Supplier, q SupplierQuery) []models.Supplier {
	out := make([]models.Supplier, 0, len(suppliers))
	for _, sp := range suppliers {
		if MatchSupplier(sp, q) {
			out = append(out, sp)
		}
	}
	switch q.Sort {
	case models.SupplierSortName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case models.SupplierSortCategory:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	case models.SupplierSortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case models.SupplierSortOrders:
		sort.SliceStable(out, func(i, j int) bool { return out[i].TotalOrders > out[j].TotalOrders })
	case models.SupplierSortValue:
		sort.SliceStable(out, func(i, j int) bool { return out[i].TotalValue > out[j].TotalValue })
	case models.SupplierSortStatus:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Status.Label() < out[j].Status.Label() })
	}
	return out
}
