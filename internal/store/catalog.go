package store

import (
	"time"

	"agrilink-backend/internal/models"
)

// GetProduct returns the catalog entry with the given id.
func (s *Store) GetProduct(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return cloneProduct(p), nil
		}
	}
	return models.Product{}, ErrNotFound
}

// GetAllProducts returns the full catalog.
func (s *Store) GetAllProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, cloneProduct(p))
	}
	return out
}

// AddProduct adds a new catalog entry. Sellers use this when listing produce
// that is not in the catalog yet.
func (s *Store) AddProduct(p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = s.nextID("prd")
	}
	if p.Category == "" {
		p.Category = models.ProductCategoryVegetable
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.products = append(s.products, p)
	return cloneProduct(p), nil
}

// UpdateProductPrice sets the shared catalog price of a product. Every
// seller's view of the product changes with it.
func (s *Store) UpdateProductPrice(id string, pricePerKg float64) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setProductPrice(id, pricePerKg, nil)
}

// UpdateProductPricing sets the catalog price and the unit in one call. It
// overlaps with UpdateProductPrice; both are kept because both edit flows
// exist in the client.
func (s *Store) UpdateProductPricing(id string, pricePerKg float64, unit string) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setProductPrice(id, pricePerKg, &unit)
}

// setProductPrice mutates the shared catalog entry. Callers hold the write
// lock.
func (s *Store) setProductPrice(id string, pricePerKg float64, unit *string) (models.Product, error) {
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		s.products[i].DefaultPricePerKg = pricePerKg
		if unit != nil {
			s.products[i].Unit = *unit
		}
		s.products[i].UpdatedAt = time.Now()
		return cloneProduct(s.products[i]), nil
	}
	return models.Product{}, ErrNotFound
}
