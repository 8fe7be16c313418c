package api

import (
	"net/http"

	"agrilink-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// GetOrders returns every order the caller is a party to, as buyer or seller
func GetOrders(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "User not authenticated",
		})
		return
	}

	st, ok := getStore(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    st.GetOrders(userID),
	})
}

// GetOrder returns one order by id
func GetOrder(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	order, err := st.GetOrder(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// CreateOrder places a marketplace order against a seller. Stock is reserved
// from the seller's lots; the order is rejected whole when any line cannot be
// covered.
func CreateOrder(c *gin.Context) {
	var req struct {
		SellerID string             `json:"sellerId" binding:"required"`
		Items    []models.OrderItem `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request data: " + err.Error(),
		})
		return
	}

	for _, it := range req.Items {
		if it.ProductID == "" || it.QuantityKg <= 0 || it.PricePerKg <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Each order line needs a product, a positive quantity and a positive price",
			})
			return
		}
	}

	st, ok := getStore(c)
	if !ok {
		return
	}

	order, err := st.CreateOrder(c.GetString("userID"), req.SellerID, req.Items)
	if err != nil {
		storeError(c, err)
		return
	}

	if notifier != nil {
		notifier.OrderPlaced(&order)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// CreateInstantOrder records an on-the-spot sale against one lot. The order
// starts Confirmed and the lot quantity is left untouched; the seller adjusts
// stock when physically picking the produce.
func CreateInstantOrder(c *gin.Context) {
	var req struct {
		LotID      string  `json:"lotId" binding:"required"`
		QuantityKg float64 `json:"quantityKg" binding:"required,gt=0"`
		PricePerKg float64 `json:"pricePerKg" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request data: " + err.Error(),
		})
		return
	}

	st, ok := getStore(c)
	if !ok {
		return
	}

	order, err := st.CreateInstantOrder(c.GetString("userID"), req.LotID, req.QuantityKg, req.PricePerKg)
	if err != nil {
		storeError(c, err)
		return
	}

	if notifier != nil {
		notifier.OrderPlaced(&order)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// AcceptOrder confirms an order. The store applies the Confirmed status
// unconditionally, whatever the current one.
func AcceptOrder(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	order, err := st.AcceptOrder(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}

	if notifier != nil {
		notifier.OrderStatusChanged(&order)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// PackOrder marks an order packed and ready for delivery
func PackOrder(c *gin.Context) {
	var req struct {
		PackerName string `json:"packerName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request data: " + err.Error(),
		})
		return
	}

	st, ok := getStore(c)
	if !ok {
		return
	}

	order, err := st.PackOrder(c.Param("id"), req.PackerName)
	if err != nil {
		storeError(c, err)
		return
	}

	if notifier != nil {
		notifier.OrderStatusChanged(&order)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// ShipOrder marks an order as out for delivery
func ShipOrder(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	order, err := st.ShipOrder(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}

	if notifier != nil {
		notifier.OrderStatusChanged(&order)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// DeliverOrder marks an order delivered
func DeliverOrder(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	order, err := st.DeliverOrder(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}

	if notifier != nil {
		notifier.OrderStatusChanged(&order)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// CancelOrder cancels an order still in its early states and returns any
// reserved stock to the lots it came from
func CancelOrder(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	order, err := st.CancelOrder(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}

	if notifier != nil {
		notifier.OrderStatusChanged(&order)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// AssignDriver attaches a driver to an order's logistics block by driver id
func AssignDriver(c *gin.Context) {
	var req struct {
		DriverID string `json:"driverId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request data: " + err.Error(),
		})
		return
	}

	st, ok := getStore(c)
	if !ok {
		return
	}

	order, err := st.AssignDriver(c.Param("id"), req.DriverID)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// UpdateOrderLogistics sets the delivery block of an order
func UpdateOrderLogistics(c *gin.Context) {
	var req models.Logistics
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request data: " + err.Error(),
		})
		return
	}

	st, ok := getStore(c)
	if !ok {
		return
	}

	order, err := st.UpdateOrderLogistics(c.Param("id"), req)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// SetPaymentStatus updates the payment flag on an order
func SetPaymentStatus(c *gin.Context) {
	var req struct {
		PaymentStatus models.PaymentStatus `json:"paymentStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request data: " + err.Error(),
		})
		return
	}

	switch req.PaymentStatus {
	case models.PaymentStatusUnpaid, models.PaymentStatusPaid, models.PaymentStatusOverdue:
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Unknown payment status",
		})
		return
	}

	st, ok := getStore(c)
	if !ok {
		return
	}

	order, err := st.SetPaymentStatus(c.Param("id"), req.PaymentStatus)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// ReportOrderIssue attaches a delivery problem to an order. The order keeps
// its current status.
func ReportOrderIssue(c *gin.Context) {
	var req struct {
		Description string `json:"description" binding:"required"`
		PhotoURL    string `json:"photoUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request data: " + err.Error(),
		})
		return
	}

	st, ok := getStore(c)
	if !ok {
		return
	}

	order, err := st.ReportOrderIssue(c.Param("id"), req.Description, req.PhotoURL)
	if err != nil {
		storeError(c, err)
		return
	}

	if notifier != nil {
		notifier.OrderIssueReported(&order, req.Description)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// SetOrderPriority flags or unflags an order for priority handling
func SetOrderPriority(c *gin.Context) {
	var req struct {
		IsPriority *bool `json:"isPriority" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request data: " + err.Error(),
		})
		return
	}

	st, ok := getStore(c)
	if !ok {
		return
	}

	order, err := st.SetOrderPriority(c.Param("id"), *req.IsPriority)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}
