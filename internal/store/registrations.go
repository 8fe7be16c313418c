package store

import (
	"time"

	"agrilink-backend/internal/models"
)

// GetRegistrationRequests returns every registration request.
func (s *Store) GetRegistrationRequests() []models.RegistrationRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.RegistrationRequest, 0, len(s.registrations))
	for _, r := range s.registrations {
		out = append(out, cloneRegistration(r))
	}
	return out
}

// GetRegistrationRequest returns one request by id.
func (s *Store) GetRegistrationRequest(id string) (models.RegistrationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.registrations {
		if r.ID == id {
			return cloneRegistration(r), nil
		}
	}
	return models.RegistrationRequest{}, ErrNotFound
}

// CreateRegistrationRequest records a signup or invite awaiting admin review.
func (s *Store) CreateRegistrationRequest(r models.RegistrationRequest) (models.RegistrationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = s.nextID("reg")
	}
	r.Status = models.RegistrationStatusPending
	r.CreatedAt = time.Now()
	r.DecidedAt = nil
	s.registrations = append(s.registrations, r)
	return cloneRegistration(r), nil
}

// ApproveRegistration flips a request to Approved and synthesizes the user
// account, plus a customer record with an Active connection when the
// requested role is CONSUMER.
//
// The store itself has no idempotency guard: approving an already approved
// request creates another user. The handler layer refuses to re-approve a
// decided request, which is the only thing preventing duplicates, same as the
// original system.
func (s *Store) ApproveRegistration(id string) (models.User, *models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.registrations {
		if s.registrations[i].ID != id {
			continue
		}
		req := &s.registrations[i]
		now := time.Now()
		req.Status = models.RegistrationStatusApproved
		req.DecidedAt = &now

		user := models.User{
			ID:           s.nextID("usr"),
			Email:        req.Email,
			Phone:        req.Phone,
			Name:         req.ContactName,
			BusinessName: req.BusinessName,
			Role:         req.Role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		s.users = append(s.users, user)

		var customer *models.Customer
		if req.Role == models.UserRoleConsumer {
			c := models.Customer{
				ID:               s.nextID("cus"),
				UserID:           &user.ID,
				BusinessName:     req.BusinessName,
				ContactName:      req.ContactName,
				Email:            req.Email,
				Phone:            req.Phone,
				ConnectionStatus: models.ConnectionStatusActive,
				CreatedAt:        now,
				UpdatedAt:        now,
			}
			if req.Consumer != nil {
				c.Location = req.Consumer.Location
			}
			s.customers = append(s.customers, c)
			cc := cloneCustomer(c)
			customer = &cc
		}
		return cloneUser(user), customer, nil
	}
	return models.User{}, nil, ErrNotFound
}

// RejectRegistration flips a request to Rejected.
func (s *Store) RejectRegistration(id string) (models.RegistrationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.registrations {
		if s.registrations[i].ID == id {
			now := time.Now()
			s.registrations[i].Status = models.RegistrationStatusRejected
			s.registrations[i].DecidedAt = &now
			return cloneRegistration(s.registrations[i]), nil
		}
	}
	return models.RegistrationRequest{}, ErrNotFound
}

// GetFormTemplate returns the signup form template for a role.
func (s *Store) GetFormTemplate(role models.UserRole) (models.FormTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tpl, ok := s.formTemplates[role]
	if !ok {
		return models.FormTemplate{}, ErrNotFound
	}
	out := tpl
	out.Fields = make([]models.FormField, len(tpl.Fields))
	copy(out.Fields, tpl.Fields)
	return out, nil
}
