package models

import "time"

// SupplierStatus is the administrative standing of a supplier. Unlike
// entry and exit statuses it has no lifecycle graph; any change is a
// legitimate administrative decision.
type SupplierStatus string

const (
	SupplierActive   SupplierStatus = "ACTIVE"
	SupplierInactive SupplierStatus = "INACTIVE"
	SupplierPending  SupplierStatus = "PENDING"
	SupplierBlocked  SupplierStatus = "BLOCKED"
)

// Label returns the display label used across the product.
func (s SupplierStatus) Label() string {
	switch s {
	case SupplierActive:
		return "Actif"
	case SupplierInactive:
		return "Inactif"
	case SupplierPending:
		return "En attente"
	case SupplierBlocked:
		return "Bloqué"
	default:
		return string(s)
	}
}

// SupplierReliability grades a supplier's delivery track record.
type SupplierReliability string

const (
	ReliabilityExcellent SupplierReliability = "EXCELLENT"
	ReliabilityGood      SupplierReliability = "GOOD"
	ReliabilityAverage   SupplierReliability = "AVERAGE"
	ReliabilityPoor      SupplierReliability = "POOR"
)

// Label returns the display label used across the product.
func (r SupplierReliability) Label() string {
	switch r {
	case ReliabilityExcellent:
		return "Excellent"
	case ReliabilityGood:
		return "Bon"
	case ReliabilityAverage:
		return "Moyen"
	case ReliabilityPoor:
		return "Faible"
	default:
		return string(r)
	}
}

// Supplier is a sourcing partner with its commercial track record.
type Supplier struct {
	ID            string              `json:"id" bson:"_id"`
	Name          string              `json:"name" bson:"name"`
	Category      string              `json:"category" bson:"category"`
	ContactPerson string              `json:"contact_person" bson:"contact_person"`
	Email         string              `json:"email" bson:"email"`
	Phone         string              `json:"phone" bson:"phone"`
	Address       string              `json:"address" bson:"address"`
	City          string              `json:"city" bson:"city"`
	Country       string              `json:"country" bson:"country"`
	ProductsCount int                 `json:"products_count" bson:"products_count"`
	TotalOrders   int                 `json:"total_orders" bson:"total_orders"`
	TotalValue    float64             `json:"total_value" bson:"total_value"`
	Rating        float64             `json:"rating" bson:"rating"`
	Status        SupplierStatus      `json:"status" bson:"status"`
	Reliability   SupplierReliability `json:"reliability" bson:"reliability"`
	LastOrderDate time.Time           `json:"last_order_date" bson:"last_order_date"`
	PaymentTerms  string              `json:"payment_terms" bson:"payment_terms"`
	Notes         string              `json:"notes,omitempty" bson:"notes,omitempty"`
}
