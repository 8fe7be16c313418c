package store

import (
	"time"

	"agrilink-backend/internal/models"
)

// GetOrders returns the union of orders where the user is buyer or seller.
// Callers post-filter by BuyerID/SellerID to pick a perspective.
func (s *Store) GetOrders(userID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.BuyerID == userID || o.SellerID == userID {
			out = append(out, cloneOrder(o))
		}
	}
	return out
}

// GetOrder returns one order by id.
func (s *Store) GetOrder(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return models.Order{}, ErrNotFound
}

// CreateOrder records a buyer-initiated marketplace purchase. Every line is
// checked against the seller's available lots and the stock is decremented
// inside the same operation; on a shortfall nothing is mutated and
// ErrInsufficientStock is returned.
func (s *Store) CreateOrder(buyerID, sellerID string, items []models.OrderItem) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(items) == 0 {
		return models.Order{}, ErrInvalidTransition
	}

	// First pass: make sure every line can be covered. Quantities are
	// aggregated per product so duplicate lines count against the same stock.
	need := make(map[string]float64)
	for _, it := range items {
		need[it.ProductID] += it.QuantityKg
	}
	for productID, qty := range need {
		var available float64
		for _, lot := range s.inventory {
			if lot.SellerID == sellerID && lot.ProductID == productID && lot.Status == models.LotStatusAvailable {
				available += lot.QuantityKg
			}
		}
		if qty > available {
			return models.Order{}, ErrInsufficientStock
		}
	}

	order := models.Order{
		ID:            s.nextID("ord"),
		BuyerID:       buyerID,
		SellerID:      sellerID,
		Items:         append([]models.OrderItem(nil), items...),
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	order.TotalAmount = order.Total()

	// Second pass: take the stock, oldest lots first in collection order.
	var taken []lotReservation
	for _, it := range items {
		remaining := it.QuantityKg
		for i := range s.inventory {
			lot := &s.inventory[i]
			if remaining <= 0 {
				break
			}
			if lot.SellerID != sellerID || lot.ProductID != it.ProductID || lot.Status != models.LotStatusAvailable {
				continue
			}
			take := remaining
			if lot.QuantityKg < take {
				take = lot.QuantityKg
			}
			lot.QuantityKg -= take
			remaining -= take
			taken = append(taken, lotReservation{LotID: lot.ID, QtyKg: take})
		}
	}
	s.reservations[order.ID] = taken

	s.orders = append(s.orders, order)
	return cloneOrder(order), nil
}

// CreateInstantOrder records a sale a seller enters directly, outside the
// buyer-initiated flow. The order starts Confirmed and Unpaid. The source lot
// is NOT decremented or flagged; instant sales never touch stock levels.
func (s *Store) CreateInstantOrder(buyerID, lotID string, quantityKg, pricePerKg float64) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lot *models.InventoryItem
	for i := range s.inventory {
		if s.inventory[i].ID == lotID {
			lot = &s.inventory[i]
			break
		}
	}
	if lot == nil {
		return models.Order{}, ErrNotFound
	}

	order := models.Order{
		ID:       s.nextID("ord"),
		BuyerID:  buyerID,
		SellerID: lot.SellerID,
		Items: []models.OrderItem{{
			ProductID:  lot.ProductID,
			QuantityKg: quantityKg,
			PricePerKg: pricePerKg,
		}},
		Status:        models.OrderStatusConfirmed,
		PaymentStatus: models.PaymentStatusUnpaid,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	order.TotalAmount = order.Total()
	s.orders = append(s.orders, order)
	return cloneOrder(order), nil
}

// AcceptOrder sets an order to Confirmed. There is no guard on the current
// status: accepting an already shipped or delivered order forces it back to
// Confirmed, exactly as the original system behaves.
func (s *Store) AcceptOrder(id string) (models.Order, error) {
	return s.setStatus(id, models.OrderStatusConfirmed)
}

// PackOrder marks an order ready for delivery and stamps who packed it. The
// packer is recorded by name; driver assignment is a separate step.
func (s *Store) PackOrder(id, packerName string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			now := time.Now()
			s.orders[i].Status = models.OrderStatusReadyForDelivery
			s.orders[i].PackedBy = packerName
			s.orders[i].PackedAt = &now
			s.orders[i].UpdatedAt = now
			return cloneOrder(s.orders[i]), nil
		}
	}
	return models.Order{}, ErrNotFound
}

// ShipOrder marks an order shipped.
func (s *Store) ShipOrder(id string) (models.Order, error) {
	return s.setStatus(id, models.OrderStatusShipped)
}

// DeliverOrder marks an order delivered.
func (s *Store) DeliverOrder(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			now := time.Now()
			s.orders[i].Status = models.OrderStatusDelivered
			s.orders[i].DeliveredAt = &now
			s.orders[i].UpdatedAt = now
			return cloneOrder(s.orders[i]), nil
		}
	}
	return models.Order{}, ErrNotFound
}

// CancelOrder cancels an order that has not entered fulfilment yet. Stock
// reserved at creation time goes back on the lots it was taken from.
func (s *Store) CancelOrder(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		st := s.orders[i].Status
		if st != models.OrderStatusPending && st != models.OrderStatusConfirmed {
			return models.Order{}, ErrInvalidTransition
		}
		for _, res := range s.reservations[id] {
			for j := range s.inventory {
				if s.inventory[j].ID == res.LotID {
					s.inventory[j].QuantityKg += res.QtyKg
					break
				}
			}
		}
		delete(s.reservations, id)
		s.orders[i].Status = models.OrderStatusCancelled
		s.orders[i].UpdatedAt = time.Now()
		return cloneOrder(s.orders[i]), nil
	}
	return models.Order{}, ErrNotFound
}

// AssignDriver puts a driver on the order's logistics block, referenced by id
// with the display name resolved here.
func (s *Store) AssignDriver(orderID, driverID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var driver *models.Driver
	for i := range s.drivers {
		if s.drivers[i].ID == driverID {
			driver = &s.drivers[i]
			break
		}
	}
	if driver == nil {
		return models.Order{}, ErrNotFound
	}

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			if s.orders[i].Logistics == nil {
				s.orders[i].Logistics = &models.Logistics{}
			}
			id := driver.ID
			s.orders[i].Logistics.DriverID = &id
			s.orders[i].Logistics.DriverName = driver.Name
			s.orders[i].UpdatedAt = time.Now()
			return cloneOrder(s.orders[i]), nil
		}
	}
	return models.Order{}, ErrNotFound
}

// UpdateOrderLogistics replaces the delivery block of an order. A driver id
// in the payload is resolved to its display name.
func (s *Store) UpdateOrderLogistics(orderID string, l models.Logistics) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l.DriverID != nil {
		for _, d := range s.drivers {
			if d.ID == *l.DriverID {
				l.DriverName = d.Name
				break
			}
		}
	}
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			block := l
			s.orders[i].Logistics = &block
			s.orders[i].UpdatedAt = time.Now()
			return cloneOrder(s.orders[i]), nil
		}
	}
	return models.Order{}, ErrNotFound
}

// SetPaymentStatus updates the payment state of an order.
func (s *Store) SetPaymentStatus(orderID string, ps models.PaymentStatus) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].PaymentStatus = ps
			s.orders[i].UpdatedAt = time.Now()
			return cloneOrder(s.orders[i]), nil
		}
	}
	return models.Order{}, ErrNotFound
}

// ReportOrderIssue attaches an issue record to an order. The status is left
// alone; an issue at delivery does not roll the lifecycle back.
func (s *Store) ReportOrderIssue(orderID, description, photoURL string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Issue = &models.OrderIssue{
				Description: description,
				PhotoURL:    photoURL,
				ReportedAt:  time.Now(),
			}
			s.orders[i].UpdatedAt = time.Now()
			return cloneOrder(s.orders[i]), nil
		}
	}
	return models.Order{}, ErrNotFound
}

// SetOrderPriority flips the priority flag on an order.
func (s *Store) SetOrderPriority(orderID string, priority bool) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].IsPriority = priority
			s.orders[i].UpdatedAt = time.Now()
			return cloneOrder(s.orders[i]), nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (s *Store) setStatus(id string, status models.OrderStatus) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = time.Now()
			return cloneOrder(s.orders[i]), nil
		}
	}
	return models.Order{}, ErrNotFound
}
