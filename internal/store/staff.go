package store

import (
	"time"

	"agrilink-backend/internal/models"
)

// GetDrivers returns the drivers working for one wholesaler, or all drivers
// when wholesalerID is empty.
func (s *Store) GetDrivers(wholesalerID string) []models.Driver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Driver
	for _, d := range s.drivers {
		if wholesalerID == "" || d.WholesalerID == wholesalerID {
			out = append(out, d)
		}
	}
	return out
}

// GetPackers returns the packers working for one wholesaler, or all packers
// when wholesalerID is empty.
func (s *Store) GetPackers(wholesalerID string) []models.Packer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Packer
	for _, p := range s.packers {
		if wholesalerID == "" || p.WholesalerID == wholesalerID {
			out = append(out, p)
		}
	}
	return out
}

// AddDriver registers a driver under a wholesaler.
func (s *Store) AddDriver(d models.Driver) (models.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.ID == "" {
		d.ID = s.nextID("drv")
	}
	d.CreatedAt = time.Now()
	s.drivers = append(s.drivers, d)
	return d, nil
}

// AddPacker registers a packer under a wholesaler.
func (s *Store) AddPacker(p models.Packer) (models.Packer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = s.nextID("pkr")
	}
	p.CreatedAt = time.Now()
	s.packers = append(s.packers, p)
	return p, nil
}
