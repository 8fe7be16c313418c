package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"agrilink-backend/internal/middleware"
	"agrilink-backend/internal/models"
	"agrilink-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitPriceRequestNotifiesIssuer(t *testing.T) {
	router, st, authService := newTestRouter(t)
	authMW := middleware.NewAuthMiddleware(authService)

	InitializeServices(services.NewNotifier(st, nil), nil, nil, nil)
	defer InitializeServices(nil, nil, nil, nil)

	g := router.Group("", authMW.AuthRequired())
	g.POST("/price-requests", authMW.RequireRoles("ADMIN"), CreatePriceRequest)
	g.POST("/price-requests/:id/respond", SubmitPriceRequestResponse)

	admin := tokenFor(t, st, authService, "a1")
	supplier := tokenFor(t, st, authService, "u2")

	w := performRequest(router, http.MethodPost, "/price-requests", admin, gin.H{
		"supplierId":   "u3",
		"customerName": "Fresh Basket Deli",
		"items": []gin.H{
			{"productName": "Mango", "targetPrice": 5.5},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.SupplierPriceRequest `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "a1", created.Data.IssuedByID)

	adminBefore := len(st.GetAppNotifications("a1"))
	supplierBefore := len(st.GetAppNotifications("u2"))

	w = performRequest(router, http.MethodPost, "/price-requests/rfq-1/respond", supplier, gin.H{
		"offers": []gin.H{
			{"productName": "Tomato", "offeredPrice": 4.1},
			{"productName": "Carrot", "offeredPrice": 2.6},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	// The submission notice goes to the admin who issued rfq-1, not to the
	// responding supplier.
	assert.Len(t, st.GetAppNotifications("a1"), adminBefore+1)
	assert.Len(t, st.GetAppNotifications("u2"), supplierBefore)
}
