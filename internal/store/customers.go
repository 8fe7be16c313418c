package store

import (
	"strings"
	"time"

	"agrilink-backend/internal/models"
)

// GetCustomers returns every customer business record.
func (s *Store) GetCustomers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, cloneCustomer(c))
	}
	return out
}

// GetCustomer returns one customer by id.
func (s *Store) GetCustomer(id string) (models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return cloneCustomer(c), nil
		}
	}
	return models.Customer{}, ErrNotFound
}

// CreateCustomer adds a customer record via manual or quick onboarding.
func (s *Store) CreateCustomer(c models.Customer) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = s.nextID("cus")
	}
	if c.ConnectionStatus == "" {
		c.ConnectionStatus = models.ConnectionStatusPending
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	s.customers = append(s.customers, c)
	return cloneCustomer(c), nil
}

// UpdateCustomer applies a profile edit to a customer record.
func (s *Store) UpdateCustomer(id string, upd models.Customer) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID != id {
			continue
		}
		c := &s.customers[i]
		if upd.BusinessName != "" {
			c.BusinessName = upd.BusinessName
		}
		if upd.ContactName != "" {
			c.ContactName = upd.ContactName
		}
		if upd.Email != "" {
			c.Email = upd.Email
		}
		if upd.Phone != "" {
			c.Phone = upd.Phone
		}
		if upd.Category != "" {
			c.Category = upd.Category
		}
		if upd.Location != "" {
			c.Location = upd.Location
		}
		if upd.CommonProducts != "" {
			c.CommonProducts = upd.CommonProducts
		}
		c.UpdatedAt = time.Now()
		return cloneCustomer(*c), nil
	}
	return models.Customer{}, ErrNotFound
}

// UpdateCustomerConnection applies an admin pairing action: connection
// status, supplier, markup and assigned rep.
func (s *Store) UpdateCustomerConnection(id string, upd models.CustomerConnectionUpdate) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID != id {
			continue
		}
		c := &s.customers[i]
		if upd.ConnectionStatus != nil {
			c.ConnectionStatus = *upd.ConnectionStatus
		}
		if upd.SupplierID != nil {
			c.SupplierID = upd.SupplierID
		}
		if upd.MarkupPercent != nil {
			c.MarkupPercent = upd.MarkupPercent
		}
		if upd.AssignedRepID != nil {
			c.AssignedRepID = upd.AssignedRepID
		}
		c.UpdatedAt = time.Now()
		return cloneCustomer(*c), nil
	}
	return models.Customer{}, ErrNotFound
}

// FindBuyersForProduct returns the customers whose free-text commonProducts
// field contains the product name, case-insensitively. This is plain
// substring matching: "Tomato" matches "Tomatoes", and a short query like
// "Tom" would also match a "Tomcat" entry.
func (s *Store) FindBuyersForProduct(productName string) []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(productName)
	var out []models.Customer
	for _, c := range s.customers {
		if strings.Contains(strings.ToLower(c.CommonProducts), needle) {
			out = append(out, cloneCustomer(c))
		}
	}
	return out
}
