package store

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/babetech/borastock/internal/domain/models"
)

// Kind identifies one of the four top-level collections.
type Kind string

const (
	KindItems     Kind = "items"
	KindEntries   Kind = "entries"
	KindExits     Kind = "exits"
	KindSuppliers Kind = "suppliers"
)

// ID prefixes follow the historical numbering scheme of the product:
// P001 products, E001 receipts, S001 shipments, SUP001 suppliers.
const (
	itemIDPrefix     = "P"
	entryIDPrefix    = "E"
	exitIDPrefix     = "S"
	supplierIDPrefix = "SUP"
)

// Store owns the four collections. All mutation is serialized through a
// single mutex; reads hand out copied snapshots, so no caller ever
// observes a partially applied change.
type Store struct {
	mu        sync.RWMutex
	items     []models.StockItem
	entries   []models.StockEntry
	exits     []models.StockExit
	suppliers []models.Supplier

	subs   map[Kind][]chan struct{}
	now    func() time.Time
	logger *zap.Logger
}

// New builds an empty store.
func New(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		subs:   make(map[Kind][]chan struct{}),
		now:    time.Now,
		logger: logger,
	}
}

// Subscribe returns a channel that receives a coalesced signal after
// every mutation of the given collection. The channel is never closed.
func (s *Store) Subscribe(kind Kind) <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan struct{}, 1)
	s.subs[kind] = append(s.subs[kind], ch)
	return ch
}

// notify must be called with the write lock held.
func (s *Store) notify(kind Kind) {
	for _, ch := range s.subs[kind] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// nextID computes <prefix><seq> where seq is one past the highest
// numeric suffix already present, zero-padded to three digits.
func nextID(prefix string, existing []string) string {
	max := 0
	for _, id := range existing {
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	seq := strconv.Itoa(max + 1)
	for len(seq) < 3 {
		seq = "0" + seq
	}
	return prefix + seq
}

// ===== STOCK ITEMS =====

// Items returns a snapshot of the item collection, newest first.
func (s *Store) Items() []models.StockItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.StockItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemByID looks up a single item.
func (s *Store) ItemByID(id string) (models.StockItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.StockItem{}, &NotFoundError{Kind: KindItems, ID: id}
}

// AddItem inserts a new item at the head of the collection. The id, the
// update timestamp and the status are assigned here; any caller-supplied
// values for them are ignored.
func (s *Store) AddItem(item models.StockItem) models.StockItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, len(s.items))
	for i, it := range s.items {
		ids[i] = it.ID
	}
	item.ID = nextID(itemIDPrefix, ids)
	item.LastUpdate = s.now()
	item.Status = models.StockStatusForLevels(item.CurrentStock, item.MinStock, item.MaxStock)

	s.items = append([]models.StockItem{item}, s.items...)
	s.notify(KindItems)
	s.logger.Debug("item added", zap.String("id", item.ID), zap.String("name", item.Name))
	return item
}

// UpdateItem replaces the item with the same id. The status is rederived
// from the updated levels and the timestamp is refreshed.
func (s *Store) UpdateItem(item models.StockItem) (models.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.items {
		if it.ID != item.ID {
			continue
		}
		item.LastUpdate = s.now()
		item.Status = models.StockStatusForLevels(item.CurrentStock, item.MinStock, item.MaxStock)
		s.items[i] = item
		s.notify(KindItems)
		return item, nil
	}
	return models.StockItem{}, &NotFoundError{Kind: KindItems, ID: item.ID}
}

// DeleteItem removes the item with the given id.
func (s *Store) DeleteItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	removed := false
	for _, it := range s.items {
		if it.ID == id {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return &NotFoundError{Kind: KindItems, ID: id}
	}
	s.items = kept
	s.notify(KindItems)
	return nil
}

// ===== STOCK ENTRIES =====

// Entries returns a snapshot of the entry collection, newest first.
func (s *Store) Entries() []models.StockEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.StockEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// EntryByID looks up a single entry.
func (s *Store) EntryByID(id string) (models.StockEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return models.StockEntry{}, &NotFoundError{Kind: KindEntries, ID: id}
}

// AddEntry inserts a new receipt at the head of the collection, assigning
// its id and entry date and recomputing the total value.
func (s *Store) AddEntry(entry models.StockEntry) models.StockEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, len(s.entries))
	for i, e := range s.entries {
		ids[i] = e.ID
	}
	entry.ID = nextID(entryIDPrefix, ids)
	entry.EntryDate = s.now()
	entry.TotalValue = float64(entry.Quantity) * entry.UnitPrice
	if entry.Status == "" {
		entry.Status = models.EntryPending
	}

	s.entries = append([]models.StockEntry{entry}, s.entries...)
	s.notify(KindEntries)
	s.logger.Debug("entry added", zap.String("id", entry.ID), zap.String("product", entry.ProductName))
	return entry
}

// UpdateEntry replaces the receipt with the same id, recomputing the
// total value. Status changes must follow the entry lifecycle.
func (s *Store) UpdateEntry(entry models.StockEntry) (models.StockEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID != entry.ID {
			continue
		}
		if !e.Status.CanTransitionTo(entry.Status) {
			return models.StockEntry{}, &TransitionError{
				Kind: KindEntries, ID: entry.ID,
				From: string(e.Status), To: string(entry.Status),
			}
		}
		entry.TotalValue = float64(entry.Quantity) * entry.UnitPrice
		s.entries[i] = entry
		s.notify(KindEntries)
		return entry, nil
	}
	return models.StockEntry{}, &NotFoundError{Kind: KindEntries, ID: entry.ID}
}

// DeleteEntry removes the receipt with the given id.
func (s *Store) DeleteEntry(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	removed := false
	for _, e := range s.entries {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return &NotFoundError{Kind: KindEntries, ID: id}
	}
	s.entries = kept
	s.notify(KindEntries)
	return nil
}

// ===== STOCK EXITS =====

// Exits returns a snapshot of the exit collection, newest first.
func (s *Store) Exits() []models.StockExit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.StockExit, len(s.exits))
	copy(out, s.exits)
	return out
}

// ExitByID looks up a single exit.
func (s *Store) ExitByID(id string) (models.StockExit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.exits {
		if e.ID == id {
			return e, nil
		}
	}
	return models.StockExit{}, &NotFoundError{Kind: KindExits, ID: id}
}

// AddExit inserts a new shipment at the head of the collection, assigning
// its id and exit date and recomputing the total value.
func (s *Store) AddExit(exit models.StockExit) models.StockExit {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, len(s.exits))
	for i, e := range s.exits {
		ids[i] = e.ID
	}
	exit.ID = nextID(exitIDPrefix, ids)
	exit.ExitDate = s.now()
	exit.TotalValue = float64(exit.Quantity) * exit.UnitPrice
	if exit.Status == "" {
		exit.Status = models.ExitPending
	}
	if exit.Urgency == "" {
		exit.Urgency = models.UrgencyLow
	}

	s.exits = append([]models.StockExit{exit}, s.exits...)
	s.notify(KindExits)
	s.logger.Debug("exit added", zap.String("id", exit.ID), zap.String("product", exit.ProductName))
	return exit
}

// UpdateExit replaces the shipment with the same id, recomputing the
// total value. Status changes must follow the exit lifecycle.
func (s *Store) UpdateExit(exit models.StockExit) (models.StockExit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.exits {
		if e.ID != exit.ID {
			continue
		}
		if !e.Status.CanTransitionTo(exit.Status) {
			return models.StockExit{}, &TransitionError{
				Kind: KindExits, ID: exit.ID,
				From: string(e.Status), To: string(exit.Status),
			}
		}
		exit.TotalValue = float64(exit.Quantity) * exit.UnitPrice
		s.exits[i] = exit
		s.notify(KindExits)
		return exit, nil
	}
	return models.StockExit{}, &NotFoundError{Kind: KindExits, ID: exit.ID}
}

// DeleteExit removes the shipment with the given id.
func (s *Store) DeleteExit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.exits[:0]
	removed := false
	for _, e := range s.exits {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return &NotFoundError{Kind: KindExits, ID: id}
	}
	s.exits = kept
	s.notify(KindExits)
	return nil
}

// ===== SUPPLIERS =====

// Suppliers returns a snapshot of the supplier collection, newest first.
func (s *Store) Suppliers() []models.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Supplier, len(s.suppliers))
	copy(out, s.suppliers)
	return out
}

// SupplierByID looks up a single supplier.
func (s *Store) SupplierByID(id string) (models.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sp := range s.suppliers {
		if sp.ID == id {
			return sp, nil
		}
	}
	return models.Supplier{}, &NotFoundError{Kind: KindSuppliers, ID: id}
}

// AddSupplier inserts a new supplier at the head of the collection,
// assigning its id.
func (s *Store) AddSupplier(supplier models.Supplier) models.Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, len(s.suppliers))
	for i, sp := range s.suppliers {
		ids[i] = sp.ID
	}
	supplier.ID = nextID(supplierIDPrefix, ids)
	if supplier.Status == "" {
		supplier.Status = models.SupplierPending
	}
	if supplier.LastOrderDate.IsZero() {
		supplier.LastOrderDate = s.now()
	}

	s.suppliers = append([]models.Supplier{supplier}, s.suppliers...)
	s.notify(KindSuppliers)
	s.logger.Debug("supplier added", zap.String("id", supplier.ID), zap.String("name", supplier.Name))
	return supplier
}

// UpdateSupplier replaces the supplier with the same id. Supplier status
// is administrative, so no transition check applies.
func (s *Store) UpdateSupplier(supplier models.Supplier) (models.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sp := range s.suppliers {
		if sp.ID != supplier.ID {
			continue
		}
		s.suppliers[i] = supplier
		s.notify(KindSuppliers)
		return supplier, nil
	}
	return models.Supplier{}, &NotFoundError{Kind: KindSuppliers, ID: supplier.ID}
}

// DeleteSupplier removes the supplier with the given id.
func (s *Store) DeleteSupplier(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.suppliers[:0]
	removed := false
	for _, sp := range s.suppliers {
		if sp.ID == id {
			removed = true
			continue
		}
		kept = append(kept, sp)
	}
	if !removed {
		return &NotFoundError{Kind: KindSuppliers, ID: id}
	}
	s.suppliers = kept
	s.notify(KindSuppliers)
	return nil
}
