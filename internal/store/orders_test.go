package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrilink-backend/internal/models"
)

func TestGetOrdersReturnsBuyerAndSellerUnion(t *testing.T) {
	s := New()

	asSeller := s.GetOrders("u2")
	asBuyer := s.GetOrders("c1")

	// The demo dataset ships five orders, all between c1 and u2, so both
	// perspectives see the same five records.
	require.Len(t, asSeller, 5)
	require.Len(t, asBuyer, 5)
	for i := range asSeller {
		assert.Equal(t, asSeller[i].ID, asBuyer[i].ID)
	}

	assert.Empty(t, s.GetOrders("u3"))
	assert.Empty(t, s.GetOrders("no-such-user"))
}

func TestGetOrdersReturnsCopies(t *testing.T) {
	s := New()

	orders := s.GetOrders("c1")
	require.NotEmpty(t, orders)
	orders[0].Status = models.OrderStatusCancelled
	orders[0].Items[0].QuantityKg = 9999

	fresh, err := s.GetOrder(orders[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, models.OrderStatusCancelled, fresh.Status)
	assert.NotEqual(t, float64(9999), fresh.Items[0].QuantityKg)
}

func TestAcceptOrderHasNoStatusGuard(t *testing.T) {
	s := New()

	// Accepting a pending order confirms it.
	o, err := s.AcceptOrder("ord-1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, o.Status)

	// Repeating is idempotent in effect.
	o, err = s.AcceptOrder("ord-1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, o.Status)

	// There is no guard at all: accepting a delivered order forces it back
	// to Confirmed. This mirrors the original system and is deliberate.
	o, err = s.AcceptOrder("ord-5")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, o.Status)

	_, err = s.AcceptOrder("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateInstantOrderDoesNotTouchStock(t *testing.T) {
	s := New()

	before, err := s.GetInventoryItem("lot-1")
	require.NoError(t, err)

	o, err := s.CreateInstantOrder("c1", "lot-1", 50, 4.5)
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusConfirmed, o.Status)
	assert.Equal(t, models.PaymentStatusUnpaid, o.PaymentStatus)
	assert.Equal(t, "u2", o.SellerID)
	assert.Equal(t, float64(225), o.TotalAmount)

	// Instant sales never reserve or deplete the source lot.
	after, err := s.GetInventoryItem("lot-1")
	require.NoError(t, err)
	assert.Equal(t, before.QuantityKg, after.QuantityKg)
	assert.Equal(t, models.LotStatusAvailable, after.Status)
}

func TestCreateInstantOrderUnknownLot(t *testing.T) {
	s := New()
	_, err := s.CreateInstantOrder("c1", "lot-999", 10, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOrderReservesStock(t *testing.T) {
	s := New()

	before, err := s.GetInventoryItem("lot-1")
	require.NoError(t, err)

	o, err := s.CreateOrder("c1", "u2", []models.OrderItem{
		{ProductID: "p1", QuantityKg: 100, PricePerKg: 4.5},
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, o.Status)
	assert.Equal(t, float64(450), o.TotalAmount)

	after, err := s.GetInventoryItem("lot-1")
	require.NoError(t, err)
	assert.Equal(t, before.QuantityKg-100, after.QuantityKg)
}

func TestCreateOrderRejectsOverCapacity(t *testing.T) {
	s := New()

	before, err := s.GetInventoryItem("lot-1")
	require.NoError(t, err)

	_, err = s.CreateOrder("c1", "u2", []models.OrderItem{
		{ProductID: "p1", QuantityKg: before.QuantityKg + 1, PricePerKg: 4.5},
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// A rejected order leaves every lot untouched.
	after, err := s.GetInventoryItem("lot-1")
	require.NoError(t, err)
	assert.Equal(t, before.QuantityKg, after.QuantityKg)
}

func TestCreateOrderAggregatesDuplicateLines(t *testing.T) {
	s := New()

	// Seeded lot-1 holds 500kg of p1 for u2. Two 300kg lines fit
	// individually but together exceed the stock.
	before, err := s.GetInventoryItem("lot-1")
	require.NoError(t, err)

	_, err = s.CreateOrder("c1", "u2", []models.OrderItem{
		{ProductID: "p1", QuantityKg: 300, PricePerKg: 4.5},
		{ProductID: "p1", QuantityKg: 300, PricePerKg: 4.5},
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	after, err := s.GetInventoryItem("lot-1")
	require.NoError(t, err)
	assert.Equal(t, before.QuantityKg, after.QuantityKg)

	// Duplicate lines that jointly fit are reserved in full.
	o, err := s.CreateOrder("c1", "u2", []models.OrderItem{
		{ProductID: "p1", QuantityKg: 200, PricePerKg: 4.5},
		{ProductID: "p1", QuantityKg: 300, PricePerKg: 4.5},
	})
	require.NoError(t, err)

	after, err = s.GetInventoryItem("lot-1")
	require.NoError(t, err)
	assert.Equal(t, before.QuantityKg-500, after.QuantityKg)

	// Cancellation puts the whole aggregate back.
	_, err = s.CancelOrder(o.ID)
	require.NoError(t, err)

	restored, err := s.GetInventoryItem("lot-1")
	require.NoError(t, err)
	assert.Equal(t, before.QuantityKg, restored.QuantityKg)
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	s := New()
	_, err := s.CreateOrder("c1", "u2", nil)
	assert.Error(t, err)
}

func TestCancelOrderRestoresReservedStock(t *testing.T) {
	s := New()

	before, err := s.GetInventoryItem("lot-1")
	require.NoError(t, err)

	o, err := s.CreateOrder("c1", "u2", []models.OrderItem{
		{ProductID: "p1", QuantityKg: 40, PricePerKg: 4.5},
	})
	require.NoError(t, err)

	cancelled, err := s.CancelOrder(o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)

	after, err := s.GetInventoryItem("lot-1")
	require.NoError(t, err)
	assert.Equal(t, before.QuantityKg, after.QuantityKg)
}

func TestCancelOrderOnlyFromEarlyStates(t *testing.T) {
	s := New()

	_, err := s.CancelOrder("ord-4") // Shipped
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.CancelOrder("ord-5") // Delivered
	assert.ErrorIs(t, err, ErrInvalidTransition)

	o, err := s.CancelOrder("ord-1") // Pending
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, o.Status)
}

func TestOrderLifecycleStamps(t *testing.T) {
	s := New()

	o, err := s.PackOrder("ord-2", "Joseph Maina")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusReadyForDelivery, o.Status)
	assert.Equal(t, "Joseph Maina", o.PackedBy)
	require.NotNil(t, o.PackedAt)

	o, err = s.ShipOrder("ord-2")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, o.Status)

	o, err = s.DeliverOrder("ord-2")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, o.Status)
	require.NotNil(t, o.DeliveredAt)

	// The pack stamp survives the later transitions.
	assert.Equal(t, "Joseph Maina", o.PackedBy)
}

func TestAssignDriverByID(t *testing.T) {
	s := New()

	o, err := s.AssignDriver("ord-3", "drv-2")
	require.NoError(t, err)
	require.NotNil(t, o.Logistics)
	require.NotNil(t, o.Logistics.DriverID)
	assert.Equal(t, "drv-2", *o.Logistics.DriverID)
	assert.Equal(t, "Esther Achieng", o.Logistics.DriverName)

	_, err = s.AssignDriver("ord-3", "drv-999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateOrderLogisticsResolvesDriverName(t *testing.T) {
	s := New()

	o, err := s.UpdateOrderLogistics("ord-2", models.Logistics{
		DriverID:         strPtr("drv-1"),
		DeliveryDate:     "2026-09-01",
		DeliveryTime:     "09:30",
		DeliveryLocation: "City Market",
	})
	require.NoError(t, err)
	require.NotNil(t, o.Logistics)
	assert.Equal(t, "Samuel Kiprop", o.Logistics.DriverName)
	assert.Equal(t, "City Market", o.Logistics.DeliveryLocation)
}

func TestReportOrderIssueKeepsStatus(t *testing.T) {
	s := New()

	o, err := s.ReportOrderIssue("ord-5", "Two crates bruised", "")
	require.NoError(t, err)
	require.NotNil(t, o.Issue)
	assert.Equal(t, "Two crates bruised", o.Issue.Description)
	// Reporting at delivery does not revert the lifecycle.
	assert.Equal(t, models.OrderStatusDelivered, o.Status)
}

func TestPaymentStatusAndPriority(t *testing.T) {
	s := New()

	o, err := s.SetPaymentStatus("ord-1", models.PaymentStatusOverdue)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusOverdue, o.PaymentStatus)

	o, err = s.SetOrderPriority("ord-1", true)
	require.NoError(t, err)
	assert.True(t, o.IsPriority)
}
