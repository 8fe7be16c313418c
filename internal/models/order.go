package models

import "time"

// OrderStatus represents order lifecycle states. Seller-side actions advance
// the status monotonically forward; Cancelled is only reachable from the
// early states.
type OrderStatus string

const (
	OrderStatusPending          OrderStatus = "Pending"
	OrderStatusConfirmed        OrderStatus = "Confirmed"
	OrderStatusReadyForDelivery OrderStatus = "Ready for Delivery"
	OrderStatusShipped          OrderStatus = "Shipped"
	OrderStatusDelivered        OrderStatus = "Delivered"
	OrderStatusCancelled        OrderStatus = "Cancelled"
)

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "Unpaid"
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusOverdue PaymentStatus = "Overdue"
)

// OrderItem is one line of an order
type OrderItem struct {
	ProductID  string  `json:"productId"`
	QuantityKg float64 `json:"quantityKg"`
	PricePerKg float64 `json:"pricePerKg"`
}

// Logistics holds the delivery block of an order. Drivers are referenced by
// id; the name is resolved at assignment time for display.
type Logistics struct {
	DriverID         *string `json:"driverId,omitempty"`
	DriverName       string  `json:"driverName,omitempty"`
	DeliveryDate     string  `json:"deliveryDate,omitempty"`
	DeliveryTime     string  `json:"deliveryTime,omitempty"`
	DeliveryLocation string  `json:"deliveryLocation,omitempty"`
}

// OrderIssue records a problem reported at delivery. Attaching an issue does
// not revert earlier status transitions.
type OrderIssue struct {
	Description string    `json:"description"`
	PhotoURL    string    `json:"photoUrl,omitempty"`
	ReportedAt  time.Time `json:"reportedAt"`
}

// Order represents a sale between one buyer and one seller
type Order struct {
	ID            string        `json:"id"`
	BuyerID       string        `json:"buyerId"`
	SellerID      string        `json:"sellerId"`
	Items         []OrderItem   `json:"items"`
	TotalAmount   float64       `json:"totalAmount"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Logistics     *Logistics    `json:"logistics,omitempty"`
	Issue         *OrderIssue   `json:"issue,omitempty"`
	IsPriority    bool          `json:"isPriority"`
	PackedBy      string        `json:"packedBy,omitempty"`
	PackedAt      *time.Time    `json:"packedAt,omitempty"`
	DeliveredAt   *time.Time    `json:"deliveredAt,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// Total computes the sum of the order lines.
func (o *Order) Total() float64 {
	var total float64
	for _, it := range o.Items {
		total += it.QuantityKg * it.PricePerKg
	}
	return total
}
