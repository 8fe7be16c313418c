package models

import "time"

// UserRole represents user roles in the system
type UserRole string

const (
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleWholesaler UserRole = "WHOLESALER"
	UserRoleFarmer     UserRole = "FARMER"
	UserRoleConsumer   UserRole = "CONSUMER"
	UserRolePZRep      UserRole = "PZ_REP"
)

// IsSeller reports whether the role can list inventory and fulfil orders.
func (r UserRole) IsSeller() bool {
	return r == UserRoleWholesaler || r == UserRoleFarmer
}

// BusinessProfile holds the seller-side business details. Order acceptance in
// the UI is gated on IsComplete, the store itself does not check it.
type BusinessProfile struct {
	IsComplete     bool    `json:"isComplete"`
	RegistrationNo *string `json:"registrationNo,omitempty"`
	TaxPIN         *string `json:"taxPin,omitempty"`
	BankAccount    *string `json:"bankAccount,omitempty"`
}

// User represents an account in the AgriLink system
type User struct {
	ID              string           `json:"id"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	Name            string           `json:"name"`
	BusinessName    string           `json:"businessName"`
	PasswordHash    string           `json:"-"`
	Role            UserRole         `json:"role"`
	Location        *string          `json:"location,omitempty"`
	BusinessProfile *BusinessProfile `json:"businessProfile,omitempty"`
	// Free-text interest tags used for fuzzy buyer/seller matching.
	SellerInterests []string `json:"sellerInterests,omitempty"`
	BuyerInterests  []string `json:"buyerInterests,omitempty"`
	// Commission rate in percent, reps only.
	CommissionRate *float64  `json:"commissionRate,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// UserLogin represents user login data
type UserLogin struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserUpdate represents the mutable settings of a user account
type UserUpdate struct {
	Name            *string          `json:"name,omitempty"`
	BusinessName    *string          `json:"businessName,omitempty"`
	Phone           *string          `json:"phone,omitempty"`
	Location        *string          `json:"location,omitempty"`
	BusinessProfile *BusinessProfile `json:"businessProfile,omitempty"`
	SellerInterests []string         `json:"sellerInterests,omitempty"`
	BuyerInterests  []string         `json:"buyerInterests,omitempty"`
	CommissionRate  *float64         `json:"commissionRate,omitempty"`
}
