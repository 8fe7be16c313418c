package models

import "time"

// PriceRequestStatus represents the lifecycle of a supplier price request.
// The status flips once on submission; WON/LOST is set by the admin when the
// prospective customer decides.
type PriceRequestStatus string

const (
	PriceRequestStatusPending   PriceRequestStatus = "PENDING"
	PriceRequestStatusSubmitted PriceRequestStatus = "SUBMITTED"
	PriceRequestStatusWon       PriceRequestStatus = "WON"
	PriceRequestStatusLost      PriceRequestStatus = "LOST"
)

// PriceRequestItem is one quoted line of an RFQ. OfferedPrice and
// IsMatchingTarget stay nil until the supplier responds.
type PriceRequestItem struct {
	ProductName     string   `json:"productName"`
	TargetPrice     float64  `json:"targetPrice"`
	OfferedPrice    *float64 `json:"offeredPrice,omitempty"`
	IsMatchingTarget *bool   `json:"isMatchingTarget,omitempty"`
}

// SupplierPriceRequest is an admin-issued RFQ asking one supplier to quote
// prices against admin-set targets for a prospective customer.
type SupplierPriceRequest struct {
	ID         string `json:"id"`
	SupplierID string `json:"supplierId"`
	// Admin account that issued the request; submission notices go here.
	IssuedByID       string             `json:"issuedById,omitempty"`
	CustomerName     string             `json:"customerName"`
	CustomerCategory string             `json:"customerCategory,omitempty"`
	CustomerLocation string             `json:"customerLocation,omitempty"`
	Items            []PriceRequestItem `json:"items"`
	Status           PriceRequestStatus `json:"status"`
	CreatedAt        time.Time          `json:"createdAt"`
	SubmittedAt      *time.Time         `json:"submittedAt,omitempty"`
	ResolvedAt       *time.Time         `json:"resolvedAt,omitempty"`
}

// PriceOffer is one supplier answer line, matched to request items by product
// name.
type PriceOffer struct {
	ProductName  string  `json:"productName"`
	OfferedPrice float64 `json:"offeredPrice"`
}
