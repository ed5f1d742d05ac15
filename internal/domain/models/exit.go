package models

import "time"

// ExitStatus tracks the lifecycle of an outbound shipment.
type ExitStatus string

const (
	ExitPending   ExitStatus = "PENDING"
	ExitPrepared  ExitStatus = "PREPARED"
	ExitShipped   ExitStatus = "SHIPPED"
	ExitDelivered ExitStatus = "DELIVERED"
	ExitCancelled ExitStatus = "CANCELLED"
)

// Label returns the display label used across the product.
func (s ExitStatus) Label() string {
	switch s {
	case ExitPending:
		return "En préparation"
	case ExitPrepared:
		return "Préparée"
	case ExitShipped:
		return "Expédiée"
	case ExitDelivered:
		return "Livrée"
	case ExitCancelled:
		return "Annulée"
	default:
		return string(s)
	}
}

// exitTransitions encodes the legal lifecycle graph. DELIVERED and
// CANCELLED are terminal; cancellation is allowed from any other state.
var exitTransitions = map[ExitStatus][]ExitStatus{
	ExitPending:  {ExitPrepared, ExitCancelled},
	ExitPrepared: {ExitShipped, ExitCancelled},
	ExitShipped:  {ExitDelivered, ExitCancelled},
}

// CanTransitionTo reports whether moving to the target status is legal.
// Keeping the same status is always allowed.
func (s ExitStatus) CanTransitionTo(target ExitStatus) bool {
	if s == target {
		return true
	}
	for _, next := range exitTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// ExitUrgency is the delivery priority of a shipment.
type ExitUrgency string

const (
	UrgencyLow    ExitUrgency = "LOW"
	UrgencyMedium ExitUrgency = "MEDIUM"
	UrgencyHigh   ExitUrgency = "HIGH"
)

// Label returns the display label used across the product.
func (u ExitUrgency) Label() string {
	switch u {
	case UrgencyLow:
		return "Normale"
	case UrgencyMedium:
		return "Prioritaire"
	case UrgencyHigh:
		return "Urgente"
	default:
		return string(u)
	}
}

// Rank orders urgencies from least (0) to most (2) urgent.
func (u ExitUrgency) Rank() int {
	switch u {
	case UrgencyMedium:
		return 1
	case UrgencyHigh:
		return 2
	default:
		return 0
	}
}

// StockExit is an outbound stock shipment.
type StockExit struct {
	ID              string      `json:"id" bson:"_id"`
	ProductName     string      `json:"product_name" bson:"product_name"`
	Category        string      `json:"category" bson:"category"`
	Quantity        int         `json:"quantity" bson:"quantity"`
	UnitPrice       float64     `json:"unit_price" bson:"unit_price"`
	TotalValue      float64     `json:"total_value" bson:"total_value"`
	Customer        string      `json:"customer" bson:"customer"`
	ExitDate        time.Time   `json:"exit_date" bson:"exit_date"`
	OrderNumber     string      `json:"order_number,omitempty" bson:"order_number,omitempty"`
	DeliveryAddress string      `json:"delivery_address,omitempty" bson:"delivery_address,omitempty"`
	Status          ExitStatus  `json:"status" bson:"status"`
	Notes           string      `json:"notes,omitempty" bson:"notes,omitempty"`
	Urgency         ExitUrgency `json:"urgency" bson:"urgency"`
}
