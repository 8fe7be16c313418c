package services

import (
	"fmt"

	"agrilink-backend/internal/models"
	"agrilink-backend/internal/store"
)

// Notifier fans domain events out as in-app notifications, persisting them
// and pushing to connected recipients through the hub.
type Notifier struct {
	store *store.Store
	hub   *Hub
}

// NewNotifier creates a new notifier
func NewNotifier(st *store.Store, hub *Hub) *Notifier {
	return &Notifier{store: st, hub: hub}
}

func (n *Notifier) notify(userID string, typ models.NotificationType, title, message, link string) {
	if n.hub != nil {
		n.hub.PushNotification(userID, title, message, typ, link)
		return
	}
	n.store.AddNotification(userID, title, message, typ, link)
}

// OrderPlaced notifies the seller of a new incoming order.
func (n *Notifier) OrderPlaced(order *models.Order) {
	n.notify(order.SellerID, models.NotificationTypeOrder,
		"New order received",
		fmt.Sprintf("Order %s placed for %.2f", order.ID, order.TotalAmount),
		"/orders/"+order.ID)
}

// OrderStatusChanged notifies the buyer of a status transition.
func (n *Notifier) OrderStatusChanged(order *models.Order) {
	n.notify(order.BuyerID, models.NotificationTypeOrder,
		"Order update",
		fmt.Sprintf("Order %s is now %s", order.ID, order.Status),
		"/orders/"+order.ID)
}

// OrderIssueReported notifies the seller that the buyer flagged a problem.
func (n *Notifier) OrderIssueReported(order *models.Order, issue string) {
	n.notify(order.SellerID, models.NotificationTypeOrder,
		"Delivery issue reported",
		fmt.Sprintf("Order %s: %s", order.ID, issue),
		"/orders/"+order.ID)
}

// RegistrationDecided notifies an admin that a signup request was handled.
func (n *Notifier) RegistrationDecided(adminID string, req *models.RegistrationRequest) {
	n.notify(adminID, models.NotificationTypeRegistration,
		"Registration "+string(req.Status),
		fmt.Sprintf("Request from %s is %s", req.BusinessName, req.Status),
		"/registrations/"+req.ID)
}

// PriceRequestSubmitted notifies that a supplier answered an RFQ. The
// recipient is the admin who issued it.
func (n *Notifier) PriceRequestSubmitted(adminID string, req *models.SupplierPriceRequest) {
	n.notify(adminID, models.NotificationTypePricing,
		"Price quote submitted",
		fmt.Sprintf("Supplier responded to request for %s", req.CustomerName),
		"/pricing/"+req.ID)
}
