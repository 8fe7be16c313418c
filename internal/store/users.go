package store

import (
	"strings"
	"time"

	"agrilink-backend/internal/models"
)

// GetUser returns the user with the given id.
func (s *Store) GetUser(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return models.User{}, ErrNotFound
}

// GetUserByEmail looks a user up by email, case-insensitively.
func (s *Store) GetUserByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return models.User{}, ErrNotFound
}

// GetAllUsers returns every user account.
func (s *Store) GetAllUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, cloneUser(u))
	}
	return out
}

// CreateUser adds a user. The id and timestamps are assigned here; a caller
// supplied id is kept so seed data and approval flows can use fixed ids.
func (s *Store) CreateUser(u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) && u.Email != "" {
			return models.User{}, ErrDuplicateEmail
		}
	}
	if u.ID == "" {
		u.ID = s.nextID("usr")
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users = append(s.users, u)
	return cloneUser(u), nil
}

// UpdateUser applies a settings update to a user.
func (s *Store) UpdateUser(id string, upd models.UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		u := &s.users[i]
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.BusinessName != nil {
			u.BusinessName = *upd.BusinessName
		}
		if upd.Phone != nil {
			u.Phone = *upd.Phone
		}
		if upd.Location != nil {
			u.Location = upd.Location
		}
		if upd.BusinessProfile != nil {
			bp := *upd.BusinessProfile
			u.BusinessProfile = &bp
		}
		if upd.SellerInterests != nil {
			u.SellerInterests = cloneStrings(upd.SellerInterests)
		}
		if upd.BuyerInterests != nil {
			u.BuyerInterests = cloneStrings(upd.BuyerInterests)
		}
		if upd.CommissionRate != nil {
			u.CommissionRate = upd.CommissionRate
		}
		u.UpdatedAt = time.Now()
		return cloneUser(*u), nil
	}
	return models.User{}, ErrNotFound
}

// SetUserPassword stores a new password hash for the user.
func (s *Store) SetUserPassword(id, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].PasswordHash = passwordHash
			s.users[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

// DeleteUser removes a user account. This is the only hard delete in the
// system and exists for explicit admin removal.
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
