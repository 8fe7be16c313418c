package models

import "time"

// ProductCategory represents the produce categories in the catalog
type ProductCategory string

const (
	ProductCategoryVegetable ProductCategory = "Vegetable"
	ProductCategoryFruit     ProductCategory = "Fruit"
)

// Product represents a catalog entry shared by every seller. DefaultPricePerKg
// is the single "current market price" field; it is mutated by pricing edits,
// sale completion and price verification alike.
type Product struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          ProductCategory `json:"category"`
	Variety           string          `json:"variety,omitempty"`
	ImageURL          string          `json:"imageUrl,omitempty"`
	DefaultPricePerKg float64         `json:"defaultPricePerKg"`
	Unit              string          `json:"unit,omitempty"`
	// Estimated kg of CO2 saved per kg sold through the platform.
	CO2SavingsPerKg *float64  `json:"co2SavingsPerKg,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// LotStatus represents the lifecycle state of an inventory lot
type LotStatus string

const (
	LotStatusAvailable LotStatus = "Available"
	LotStatusDonated   LotStatus = "Donated"
	LotStatusExpired   LotStatus = "Expired"
)

// DiscountRule is an optional mark-down applied to a lot after it has been in
// the warehouse for a number of days.
type DiscountRule struct {
	AfterDays       int     `json:"afterDays"`
	DiscountPercent float64 `json:"discountPercent"`
}

// InventoryItem is a lot: one physical batch of a product from one seller.
// Lots are never removed, only status-flagged.
type InventoryItem struct {
	ID                  string        `json:"id"`
	SellerID            string        `json:"sellerId"`
	ProductID           string        `json:"productId"`
	QuantityKg          float64       `json:"quantityKg"`
	Unit                string        `json:"unit"`
	LotNumber           string        `json:"lotNumber"`
	HarvestLocation     string        `json:"harvestLocation,omitempty"`
	WarehouseLocation   string        `json:"warehouseLocation,omitempty"`
	Status              LotStatus     `json:"status"`
	HarvestedAt         *time.Time    `json:"harvestedAt,omitempty"`
	UploadedAt          time.Time     `json:"uploadedAt"`
	ExpiresAt           *time.Time    `json:"expiresAt,omitempty"`
	DiscountRule        *DiscountRule `json:"discountRule,omitempty"`
	LastPriceVerifiedAt *time.Time    `json:"lastPriceVerifiedAt,omitempty"`
}

// PricingRule records a discount-after-days rule for a lot so the pricing
// dashboard can list all active rules without walking the inventory.
type PricingRule struct {
	ID              string    `json:"id"`
	SellerID        string    `json:"sellerId"`
	LotID           string    `json:"lotId"`
	ProductID       string    `json:"productId"`
	AfterDays       int       `json:"afterDays"`
	DiscountPercent float64   `json:"discountPercent"`
	CreatedAt       time.Time `json:"createdAt"`
}
