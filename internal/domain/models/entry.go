package models

import "time"

// EntryStatus tracks the lifecycle of an inbound receipt.
type EntryStatus string

const (
	EntryPending   EntryStatus = "PENDING"
	EntryValidated EntryStatus = "VALIDATED"
	EntryReceived  EntryStatus = "RECEIVED"
	EntryCancelled EntryStatus = "CANCELLED"
)

// Label returns the display label used across the product.
func (s EntryStatus) Label() string {
	switch s {
	case EntryPending:
		return "En attente"
	case EntryValidated:
		return "Validée"
	case EntryReceived:
		return "Reçue"
	case EntryCancelled:
		return "Annulée"
	default:
		return string(s)
	}
}

// entryTransitions encodes the legal lifecycle graph. RECEIVED and
// CANCELLED are terminal; cancellation is allowed from any other state.
var entryTransitions = map[EntryStatus][]EntryStatus{
	EntryPending:   {EntryValidated, EntryCancelled},
	EntryValidated: {EntryReceived, EntryCancelled},
}

// CanTransitionTo reports whether moving to the target status is legal.
// Keeping the same status is always allowed.
func (s EntryStatus) CanTransitionTo(target EntryStatus) bool {
	if s == target {
		return true
	}
	for _, next := range entryTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// StockEntry is an inbound stock receipt.
type StockEntry struct {
	ID          string      `json:"id" bson:"_id"`
	ProductName string      `json:"product_name" bson:"product_name"`
	Category    string      `json:"category" bson:"category"`
	Quantity    int         `json:"quantity" bson:"quantity"`
	UnitPrice   float64     `json:"unit_price" bson:"unit_price"`
	TotalValue  float64     `json:"total_value" bson:"total_value"`
	Supplier    string      `json:"supplier" bson:"supplier"`
	EntryDate   time.Time   `json:"entry_date" bson:"entry_date"`
	BatchNumber string      `json:"batch_number,omitempty" bson:"batch_number,omitempty"`
	ExpiryDate  *time.Time  `json:"expiry_date,omitempty" bson:"expiry_date,omitempty"`
	Status      EntryStatus `json:"status" bson:"status"`
	Notes       string      `json:"notes,omitempty" bson:"notes,omitempty"`
}
