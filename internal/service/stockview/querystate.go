package stockview

import (
	"sync"

	"github.com/babetech/borastock/internal/domain/models"
)

// QueryState holds the current search, filter and sort selection for
// each of the four screens. Handlers read a snapshot when deriving a
// view and replace fields through the setters; individual fields carry
// no cross-validation.
type QueryState struct {
	mu        sync.RWMutex
	items     ItemQuery
	entries   EntryQuery
	exits     ExitQuery
	suppliers SupplierQuery
}

// NewQueryState builds the per-screen defaults: empty search, the
// all-pass filter, and each screen's natural ordering.
func NewQueryState() *QueryState {
	return &QueryState{
		items:     ItemQuery{Filter: models.ItemFilterAll, Sort: models.ItemSortName},
		entries:   EntryQuery{Filter: models.EntryFilterAll, Sort: models.EntrySortDate},
		exits:     ExitQuery{Filter: models.ExitFilterAll, Sort: models.ExitSortDate},
		suppliers: SupplierQuery{Filter: models.SupplierFilterAll, Sort: models.SupplierSortName},
	}
}

// Items returns the stock screen query.
func (qs *QueryState) Items() ItemQuery {
	qs.mu.RLock()
	defer qs.mu.RUnlock()
	return qs.items
}

// SetItems replaces the stock screen query.
func (qs *QueryState) SetItems(q ItemQuery) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	qs.items = q
}

// Entries returns the entries screen query.
func (qs *QueryState) Entries() EntryQuery {
	qs.mu.RLock()
	defer qs.mu.RUnlock()
	return qs.entries
}

// SetEntries replaces the entries screen query.
func (qs *QueryState) SetEntries(q EntryQuery) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	qs.entries = q
}

// Exits returns the exits screen query.
func (qs *QueryState) Exits() ExitQuery {
	qs.mu.RLock()
	defer qs.mu.RUnlock()
	return qs.exits
}

// SetExits replaces the exits screen query.
func (qs *QueryState) SetExits(q ExitQuery) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	qs.exits = q
}

// Suppliers returns the suppliers screen query.
func (qs *QueryState) Suppliers() SupplierQuery {
	qs.mu.RLock()
	defer qs.mu.RUnlock()
	return qs.suppliers
}

// SetSuppliers replaces the suppliers screen query.
func (qs *QueryState) SetSuppliers(q SupplierQuery) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	qs.suppliers = q
}
