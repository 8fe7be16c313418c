package store

import (
	"fmt"
	"time"

	"agrilink-backend/internal/models"
)

// GetInventory returns the lots owned by one seller.
func (s *Store) GetInventory(sellerID string) []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.InventoryItem
	for _, it := range s.inventory {
		if it.SellerID == sellerID {
			out = append(out, cloneLot(it))
		}
	}
	return out
}

// GetAllInventory returns every lot across all sellers.
func (s *Store) GetAllInventory() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.InventoryItem, 0, len(s.inventory))
	for _, it := range s.inventory {
		out = append(out, cloneLot(it))
	}
	return out
}

// GetInventoryItem returns one lot by id.
func (s *Store) GetInventoryItem(id string) (models.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.inventory {
		if it.ID == id {
			return cloneLot(it), nil
		}
	}
	return models.InventoryItem{}, ErrNotFound
}

// AddInventoryItem records a new stock batch for a seller.
func (s *Store) AddInventoryItem(it models.InventoryItem) (models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it.ID == "" {
		it.ID = s.nextID("lot")
	}
	if it.Status == "" {
		it.Status = models.LotStatusAvailable
	}
	if it.LotNumber == "" {
		it.LotNumber = fmt.Sprintf("LOT-%04d", len(s.inventory)+1)
	}
	if it.Unit == "" {
		it.Unit = "kg"
	}
	it.UploadedAt = time.Now()
	s.inventory = append(s.inventory, it)
	return cloneLot(it), nil
}

// MarkLotDonated flags a lot as donated. The lot stays in the collection.
func (s *Store) MarkLotDonated(id string) (models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inventory {
		if s.inventory[i].ID == id {
			s.inventory[i].Status = models.LotStatusDonated
			return cloneLot(s.inventory[i]), nil
		}
	}
	return models.InventoryItem{}, ErrNotFound
}

// SetDiscountRule attaches a discount-after-days rule to a lot and upserts
// the matching pricing-rule record.
func (s *Store) SetDiscountRule(lotID string, rule models.DiscountRule) (models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inventory {
		if s.inventory[i].ID != lotID {
			continue
		}
		r := rule
		s.inventory[i].DiscountRule = &r

		updated := false
		for j := range s.pricingRules {
			if s.pricingRules[j].LotID == lotID {
				s.pricingRules[j].AfterDays = rule.AfterDays
				s.pricingRules[j].DiscountPercent = rule.DiscountPercent
				updated = true
				break
			}
		}
		if !updated {
			s.pricingRules = append(s.pricingRules, models.PricingRule{
				ID:              s.nextID("rule"),
				SellerID:        s.inventory[i].SellerID,
				LotID:           lotID,
				ProductID:       s.inventory[i].ProductID,
				AfterDays:       rule.AfterDays,
				DiscountPercent: rule.DiscountPercent,
				CreatedAt:       time.Now(),
			})
		}
		return cloneLot(s.inventory[i]), nil
	}
	return models.InventoryItem{}, ErrNotFound
}

// GetPricingRules returns every discount rule on record.
func (s *Store) GetPricingRules() []models.PricingRule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PricingRule, len(s.pricingRules))
	copy(out, s.pricingRules)
	return out
}

// VerifyPrice stamps today as the lot's last price verification. When a price
// is supplied it is written to the shared catalog entry of the lot's product,
// so a single seller's verification reprices the product for everyone. That
// matches the original system and the pricing dashboards built on it.
func (s *Store) VerifyPrice(lotID string, pricePerKg *float64) (models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inventory {
		if s.inventory[i].ID != lotID {
			continue
		}
		now := time.Now()
		s.inventory[i].LastPriceVerifiedAt = &now
		if pricePerKg != nil {
			if _, err := s.setProductPrice(s.inventory[i].ProductID, *pricePerKg, nil); err != nil {
				return models.InventoryItem{}, err
			}
		}
		return cloneLot(s.inventory[i]), nil
	}
	return models.InventoryItem{}, ErrNotFound
}
