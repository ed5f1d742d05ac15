package models

import "strings"

// Filter and sort options are closed enumerations. The French display
// labels shown by the clients are mapped to these values at the API
// boundary by the Parse* helpers; logic never compares display strings.

// ItemFilter selects a stock status slice of the item collection.
type ItemFilter string

const (
	ItemFilterAll         ItemFilter = "all"
	ItemFilterInStock     ItemFilter = "in_stock"
	ItemFilterLowStock    ItemFilter = "low_stock"
	ItemFilterOutOfStock  ItemFilter = "out_of_stock"
	ItemFilterOverstocked ItemFilter = "overstocked"
)

// ItemSort names the ordering applied to the item view.
type ItemSort string

const (
	ItemSortNone   ItemSort = ""
	ItemSortName   ItemSort = "name"
	ItemSortStock  ItemSort = "stock"
	ItemSortPrice  ItemSort = "price"
	ItemSortStatus ItemSort = "status"
)

// EntryFilter selects a status slice of the entry collection.
type EntryFilter string

const (
	EntryFilterAll       EntryFilter = "all"
	EntryFilterPending   EntryFilter = "pending"
	EntryFilterValidated EntryFilter = "validated"
	EntryFilterReceived  EntryFilter = "received"
	EntryFilterCancelled EntryFilter = "cancelled"
)

// EntrySort names the ordering applied to the entry view.
type EntrySort string

const (
	EntrySortNone     EntrySort = ""
	EntrySortDate     EntrySort = "date"
	EntrySortProduct  EntrySort = "product"
	EntrySortQuantity EntrySort = "quantity"
	EntrySortValue    EntrySort = "value"
	EntrySortStatus   EntrySort = "status"
)

// ExitFilter selects a status slice of the exit collection.
type ExitFilter string

const (
	ExitFilterAll       ExitFilter = "all"
	ExitFilterPending   ExitFilter = "pending"
	ExitFilterPrepared  ExitFilter = "prepared"
	ExitFilterShipped   ExitFilter = "shipped"
	ExitFilterDelivered ExitFilter = "delivered"
	ExitFilterCancelled ExitFilter = "cancelled"
)

// ExitSort names the ordering applied to the exit view.
type ExitSort string

const (
	ExitSortNone     ExitSort = ""
	ExitSortDate     ExitSort = "date"
	ExitSortProduct  ExitSort = "product"
	ExitSortCustomer ExitSort = "customer"
	ExitSortQuantity ExitSort = "quantity"
	ExitSortValue    ExitSort = "value"
	ExitSortStatus   ExitSort = "status"
	ExitSortUrgency  ExitSort = "urgency"
)

// SupplierFilter selects a status slice of the supplier collection.
type SupplierFilter string

const (
	SupplierFilterAll      SupplierFilter = "all"
	SupplierFilterActive   SupplierFilter = "active"
	SupplierFilterInactive SupplierFilter = "inactive"
	SupplierFilterPending  SupplierFilter = "pending"
	SupplierFilterBlocked  SupplierFilter = "blocked"
)

// SupplierSort names the ordering applied to the supplier view.
type SupplierSort string

const (
	SupplierSortNone     SupplierSort = ""
	SupplierSortName     SupplierSort = "name"
	SupplierSortCategory SupplierSort = "category"
	SupplierSortRating   SupplierSort = "rating"
	SupplierSortOrders   SupplierSort = "orders"
	SupplierSortValue    SupplierSort = "value"
	SupplierSortStatus   SupplierSort = "status"
)

func normalizeOption(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

// ParseItemFilter maps a canonical value or display label to an ItemFilter.
// Unknown input falls back to the all-pass filter.
func ParseItemFilter(s string) ItemFilter {
	switch normalizeOption(s) {
	case "in_stock", "en stock":
		return ItemFilterInStock
	case "low_stock", "stock faible":
		return ItemFilterLowStock
	case "out_of_stock", "rupture":
		return ItemFilterOutOfStock
	case "overstocked", "surstock":
		return ItemFilterOverstocked
	default:
		return ItemFilterAll
	}
}

// ParseItemSort maps a canonical value or display label to an ItemSort.
// Unknown input yields ItemSortNone, which keeps the incoming order.
func ParseItemSort(s string) ItemSort {
	switch normalizeOption(s) {
	case "name", "nom":
		return ItemSortName
	case "stock":
		return ItemSortStock
	case "price", "prix":
		return ItemSortPrice
	case "status", "statut":
		return ItemSortStatus
	default:
		return ItemSortNone
	}
}

// ParseEntryFilter maps a canonical value or display label to an EntryFilter.
func ParseEntryFilter(s string) EntryFilter {
	switch normalizeOption(s) {
	case "pending", "en attente":
		return EntryFilterPending
	case "validated", "validées", "validée":
		return EntryFilterValidated
	case "received", "reçues", "reçue":
		return EntryFilterReceived
	case "cancelled", "annulées", "annulée":
		return EntryFilterCancelled
	default:
		return EntryFilterAll
	}
}

// ParseEntrySort maps a canonical value or display label to an EntrySort.
func ParseEntrySort(s string) EntrySort {
	switch normalizeOption(s) {
	case "date":
		return EntrySortDate
	case "product", "produit":
		return EntrySortProduct
	case "quantity", "quantité":
		return EntrySortQuantity
	case "value", "valeur":
		return EntrySortValue
	case "status", "statut":
		return EntrySortStatus
	default:
		return EntrySortNone
	}
}

// ParseExitFilter maps a canonical value or display label to an ExitFilter.
func ParseExitFilter(s string) ExitFilter {
	switch normalizeOption(s) {
	case "pending", "en préparation":
		return ExitFilterPending
	case "prepared", "préparées", "préparée":
		return ExitFilterPrepared
	case "shipped", "expédiées", "expédiée":
		return ExitFilterShipped
	case "delivered", "livrées", "livrée":
		return ExitFilterDelivered
	case "cancelled", "annulées", "annulée":
		return ExitFilterCancelled
	default:
		return ExitFilterAll
	}
}

// ParseExitSort maps a canonical value or display label to an ExitSort.
func ParseExitSort(s string) ExitSort {
	switch normalizeOption(s) {
	case "date":
		return ExitSortDate
	case "product", "produit":
		return ExitSortProduct
	case "customer", "client":
		return ExitSortCustomer
	case "quantity", "quantité":
		return ExitSortQuantity
	case "value", "valeur":
		return ExitSortValue
	case "status", "statut":
		return ExitSortStatus
	case "urgency", "urgence":
		return ExitSortUrgency
	default:
		return ExitSortNone
	}
}

// ParseSupplierFilter maps a canonical value or display label to a SupplierFilter.
func ParseSupplierFilter(s string) SupplierFilter {
	switch normalizeOption(s) {
	case "active", "actifs", "actif":
		return SupplierFilterActive
	case "inactive", "inactifs", "inactif":
		return SupplierFilterInactive
	case "pending", "en attente":
		return SupplierFilterPending
	case "blocked", "bloqués", "bloqué":
		return SupplierFilterBlocked
	default:
		return SupplierFilterAll
	}
}

// ParseSupplierSort maps a canonical value or display label to a SupplierSort.
func ParseSupplierSort(s string) SupplierSort {
	switch normalizeOption(s) {
	case "name", "nom":
		return SupplierSortName
	case "category", "catégorie":
		return SupplierSortCategory
	case "rating", "note":
		return SupplierSortRating
	case "orders", "commandes":
		return SupplierSortOrders
	case "value", "valeur":
		return SupplierSortValue
	case "status", "statut":
		return SupplierSortStatus
	default:
		return SupplierSortNone
	}
}
