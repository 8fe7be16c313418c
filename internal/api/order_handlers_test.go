package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"agrilink-backend/internal/middleware"
	"agrilink-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderRouter(t *testing.T) (*gin.Engine, string, string, func(string) string) {
	t.Helper()
	router, st, authService := newTestRouter(t)
	authMW := middleware.NewAuthMiddleware(authService)

	g := router.Group("", authMW.AuthRequired())
	g.GET("/orders", GetOrders)
	g.GET("/orders/:id", GetOrder)
	g.POST("/orders", CreateOrder)
	g.POST("/orders/instant", CreateInstantOrder)
	g.POST("/orders/:id/accept", AcceptOrder)
	g.POST("/orders/:id/cancel", CancelOrder)
	g.PUT("/orders/:id/driver", AssignDriver)

	buyer := tokenFor(t, st, authService, "c1")
	seller := tokenFor(t, st, authService, "u2")
	mint := func(userID string) string { return tokenFor(t, st, authService, userID) }
	return router, buyer, seller, mint
}

func decodeOrder(t *testing.T, body []byte) models.Order {
	t.Helper()
	var resp struct {
		Success bool         `json:"success"`
		Data    models.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.True(t, resp.Success)
	return resp.Data
}

func TestGetOrdersReturnsBothSides(t *testing.T) {
	router, buyer, seller, _ := orderRouter(t)

	for _, token := range []string{buyer, seller} {
		w := performRequest(router, http.MethodGet, "/orders", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []models.Order `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Data, 5)
	}
}

func TestCreateOrderEndpoint(t *testing.T) {
	router, buyer, _, _ := orderRouter(t)

	w := performRequest(router, http.MethodPost, "/orders", buyer, gin.H{
		"sellerId": "u2",
		"items": []gin.H{
			{"productId": "p1", "quantityKg": 25.0, "pricePerKg": 4.5},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	order := decodeOrder(t, w.Body.Bytes())
	assert.Equal(t, "c1", order.BuyerID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.InDelta(t, 112.5, order.TotalAmount, 0.001)
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	router, buyer, _, _ := orderRouter(t)

	// Seeded seller u2 holds 500kg of p1.
	w := performRequest(router, http.MethodPost, "/orders", buyer, gin.H{
		"sellerId": "u2",
		"items": []gin.H{
			{"productId": "p1", "quantityKg": 10000.0, "pricePerKg": 4.5},
		},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateOrderRejectsBadLines(t *testing.T) {
	router, buyer, _, _ := orderRouter(t)

	w := performRequest(router, http.MethodPost, "/orders", buyer, gin.H{
		"sellerId": "u2",
		"items": []gin.H{
			{"productId": "p1", "quantityKg": -5.0, "pricePerKg": 4.5},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInstantOrderEndpoint(t *testing.T) {
	router, buyer, _, _ := orderRouter(t)

	w := performRequest(router, http.MethodPost, "/orders/instant", buyer, gin.H{
		"lotId":      "lot-1",
		"quantityKg": 50.0,
		"pricePerKg": 4.5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	order := decodeOrder(t, w.Body.Bytes())
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.Equal(t, models.PaymentStatusUnpaid, order.PaymentStatus)
	assert.InDelta(t, 225, order.TotalAmount, 0.001)
}

func TestAcceptOrderEndpoint(t *testing.T) {
	router, _, seller, _ := orderRouter(t)

	w := performRequest(router, http.MethodPost, "/orders/ord-1/accept", seller, nil)
	require.Equal(t, http.StatusOK, w.Code)

	order := decodeOrder(t, w.Body.Bytes())
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
}

func TestCancelOrderEndpoint(t *testing.T) {
	router, buyer, _, _ := orderRouter(t)

	w := performRequest(router, http.MethodPost, "/orders/ord-1/cancel", buyer, nil)
	require.Equal(t, http.StatusOK, w.Code)

	order := decodeOrder(t, w.Body.Bytes())
	assert.Equal(t, models.OrderStatusCancelled, order.Status)

	// Delivered orders cannot be cancelled.
	w = performRequest(router, http.MethodPost, "/orders/ord-5/cancel", buyer, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAssignDriverEndpoint(t *testing.T) {
	router, _, seller, _ := orderRouter(t)

	w := performRequest(router, http.MethodPut, "/orders/ord-2/driver", seller, gin.H{
		"driverId": "drv-2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	order := decodeOrder(t, w.Body.Bytes())
	require.NotNil(t, order.Logistics)
	require.NotNil(t, order.Logistics.DriverID)
	assert.Equal(t, "drv-2", *order.Logistics.DriverID)
	assert.Equal(t, "Esther Achieng", order.Logistics.DriverName)

	w = performRequest(router, http.MethodPut, "/orders/ord-2/driver", seller, gin.H{
		"driverId": "drv-missing",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrderNotFound(t *testing.T) {
	router, buyer, _, _ := orderRouter(t)

	w := performRequest(router, http.MethodGet, "/orders/ord-999", buyer, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
