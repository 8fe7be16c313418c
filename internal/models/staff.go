package models

import "time"

// Driver is a delivery driver scoped to one wholesaler
type Driver struct {
	ID           string    `json:"id"`
	WholesalerID string    `json:"wholesalerId"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	VehicleReg   string    `json:"vehicleReg,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Packer is a warehouse packer scoped to one wholesaler
type Packer struct {
	ID           string    `json:"id"`
	WholesalerID string    `json:"wholesalerId"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
