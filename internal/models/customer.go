package models

import "time"

// ConnectionStatus is the pairing state between a customer and its supplier
type ConnectionStatus string

const (
	ConnectionStatusPending        ConnectionStatus = "Pending Connection"
	ConnectionStatusActive         ConnectionStatus = "Active"
	ConnectionStatusPricingPending ConnectionStatus = "Pricing Pending"
)

// Customer is the buyer-business record, distinct from the User account that
// logs in. Created on registration approval or manual onboarding.
type Customer struct {
	ID           string `json:"id"`
	UserID       *string `json:"userId,omitempty"`
	BusinessName string `json:"businessName"`
	ContactName  string `json:"contactName,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Category     string `json:"category,omitempty"`
	Location     string `json:"location,omitempty"`
	// Free-text list of products the business usually buys; matched by
	// case-insensitive substring when suggesting buyers for a product.
	CommonProducts   string           `json:"commonProducts,omitempty"`
	ConnectionStatus ConnectionStatus `json:"connectionStatus"`
	SupplierID       *string          `json:"supplierId,omitempty"`
	MarkupPercent    *float64         `json:"markupPercent,omitempty"`
	AssignedRepID    *string          `json:"assignedRepId,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// CustomerConnectionUpdate is the admin pairing payload
type CustomerConnectionUpdate struct {
	ConnectionStatus *ConnectionStatus `json:"connectionStatus,omitempty"`
	SupplierID       *string           `json:"supplierId,omitempty"`
	MarkupPercent    *float64          `json:"markupPercent,omitempty"`
	AssignedRepID    *string           `json:"assignedRepId,omitempty"`
}
