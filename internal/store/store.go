package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"agrilink-backend/internal/models"
)

// Sentinel errors returned by store operations. Handlers map these onto HTTP
// status codes.
var (
	ErrNotFound          = errors.New("record not found")
	ErrInsufficientStock = errors.New("requested quantity exceeds available stock")
	ErrInvalidTransition = errors.New("operation not allowed in current status")
	ErrAlreadyResolved   = errors.New("request already resolved")
	ErrDuplicateEmail    = errors.New("email already registered")
)

// lotReservation records stock taken from a lot for one order so a
// cancellation can put it back.
type lotReservation struct {
	LotID string
	QtyKg float64
}

// Store holds every entity collection of the marketplace in memory. All
// mutation goes through its methods; one RWMutex serialises writers, which is
// the whole concurrency model. State lives for the process lifetime only.
type Store struct {
	mu    sync.RWMutex
	idSeq int64

	users         []models.User
	products      []models.Product
	inventory     []models.InventoryItem
	orders        []models.Order
	customers     []models.Customer
	priceRequests []models.SupplierPriceRequest
	registrations []models.RegistrationRequest
	notifications []models.AppNotification
	chatMessages  []models.ChatMessage
	drivers       []models.Driver
	packers       []models.Packer
	pricingRules  []models.PricingRule
	formTemplates map[models.UserRole]models.FormTemplate

	reservations map[string][]lotReservation
}

// New creates a store loaded with the demo dataset.
func New() *Store {
	s := NewEmpty()
	s.seed()
	return s
}

// NewEmpty creates a store with no data. Used by tests that build their own
// fixtures.
func NewEmpty() *Store {
	return &Store{
		formTemplates: make(map[models.UserRole]models.FormTemplate),
		reservations:  make(map[string][]lotReservation),
	}
}

// nextID builds a timestamp-based id. The sequence suffix keeps ids unique
// when several records are created within the same millisecond. Callers must
// hold the write lock.
func (s *Store) nextID(prefix string) string {
	s.idSeq++
	return fmt.Sprintf("%s-%d-%d", prefix, time.Now().UnixMilli(), s.idSeq)
}

// Counts returns collection sizes for the health/status endpoint.
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"users":         len(s.users),
		"products":      len(s.products),
		"inventory":     len(s.inventory),
		"orders":        len(s.orders),
		"customers":     len(s.customers),
		"priceRequests": len(s.priceRequests),
		"registrations": len(s.registrations),
		"notifications": len(s.notifications),
		"chatMessages":  len(s.chatMessages),
		"drivers":       len(s.drivers),
		"packers":       len(s.packers),
	}
}
