package store

import (
	"strings"
	"time"

	"agrilink-backend/internal/models"
)

// GetSupplierPriceRequests returns the RFQs addressed to one supplier, or all
// of them when supplierID is empty (admin view).
func (s *Store) GetSupplierPriceRequests(supplierID string) []models.SupplierPriceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.SupplierPriceRequest
	for _, r := range s.priceRequests {
		if supplierID == "" || r.SupplierID == supplierID {
			out = append(out, clonePriceRequest(r))
		}
	}
	return out
}

// GetPriceRequest returns one RFQ by id.
func (s *Store) GetPriceRequest(id string) (models.SupplierPriceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.priceRequests {
		if r.ID == id {
			return clonePriceRequest(r), nil
		}
	}
	return models.SupplierPriceRequest{}, ErrNotFound
}

// CreatePriceRequest issues a new admin RFQ to a supplier.
func (s *Store) CreatePriceRequest(r models.SupplierPriceRequest) (models.SupplierPriceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = s.nextID("rfq")
	}
	r.Status = models.PriceRequestStatusPending
	r.CreatedAt = time.Now()
	r.SubmittedAt = nil
	r.ResolvedAt = nil
	s.priceRequests = append(s.priceRequests, r)
	return clonePriceRequest(r), nil
}

// SubmitPriceRequestResponse records the supplier's offers. Offers are
// matched to request lines by product name; each matched line gets the
// offered price and an at-or-below-target flag. The status flips exactly once
// from PENDING to SUBMITTED.
func (s *Store) SubmitPriceRequestResponse(id string, offers []models.PriceOffer) (models.SupplierPriceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.priceRequests {
		if s.priceRequests[i].ID != id {
			continue
		}
		r := &s.priceRequests[i]
		if r.Status != models.PriceRequestStatusPending {
			return models.SupplierPriceRequest{}, ErrAlreadyResolved
		}
		for j := range r.Items {
			for _, offer := range offers {
				if !strings.EqualFold(offer.ProductName, r.Items[j].ProductName) {
					continue
				}
				price := offer.OfferedPrice
				matching := price <= r.Items[j].TargetPrice
				r.Items[j].OfferedPrice = &price
				r.Items[j].IsMatchingTarget = &matching
			}
		}
		now := time.Now()
		r.Status = models.PriceRequestStatusSubmitted
		r.SubmittedAt = &now
		return clonePriceRequest(*r), nil
	}
	return models.SupplierPriceRequest{}, ErrNotFound
}

// ResolvePriceRequest closes a submitted RFQ as won or lost.
func (s *Store) ResolvePriceRequest(id string, won bool) (models.SupplierPriceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.priceRequests {
		if s.priceRequests[i].ID != id {
			continue
		}
		r := &s.priceRequests[i]
		if r.Status != models.PriceRequestStatusSubmitted {
			return models.SupplierPriceRequest{}, ErrInvalidTransition
		}
		now := time.Now()
		if won {
			r.Status = models.PriceRequestStatusWon
		} else {
			r.Status = models.PriceRequestStatusLost
		}
		r.ResolvedAt = &now
		return clonePriceRequest(*r), nil
	}
	return models.SupplierPriceRequest{}, ErrNotFound
}
