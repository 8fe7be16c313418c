package api

import (
	"net/http"

	"agrilink-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// GetPriceRequests lists supplier price requests. Admins see all; suppliers
// see the ones addressed to them.
func GetPriceRequests(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	supplierID := ""
	if c.GetString("userRole") != string(models.UserRoleAdmin) {
		supplierID = c.GetString("userID")
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    st.GetSupplierPriceRequests(supplierID),
	})
}

// GetPriceRequest returns one price request
func GetPriceRequest(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	req, err := st.GetPriceRequest(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    req,
	})
}

// CreatePriceRequest issues an RFQ to a supplier on behalf of a prospective
// customer. Admin only.
func CreatePriceRequest(c *gin.Context) {
	var req struct {
		SupplierID       string                    `json:"supplierId" binding:"required"`
		CustomerName     string                    `json:"customerName" binding:"required"`
		CustomerCategory string                    `json:"customerCategory"`
		CustomerLocation string                    `json:"customerLocation"`
		Items            []models.PriceRequestItem `json:"items" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request data: " + err.Error(),
		})
		return
	}

	for _, it := range req.Items {
		if it.ProductName == "" || it.TargetPrice <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Each request line needs a product name and a positive target price",
			})
			return
		}
	}

	st, ok := getStore(c)
	if !ok {
		return
	}

	created, err := st.CreatePriceRequest(models.SupplierPriceRequest{
		SupplierID:       req.SupplierID,
		IssuedByID:       c.GetString("userID"),
		CustomerName:     req.CustomerName,
		CustomerCategory: req.CustomerCategory,
		CustomerLocation: req.CustomerLocation,
		Items:            req.Items,
	})
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    created,
	})
}

// SubmitPriceRequestResponse records a supplier's quoted prices. A request
// can only be answered once.
func SubmitPriceRequestResponse(c *gin.Context) {
	var req struct {
		Offers []models.PriceOffer `json:"offers" binding:"required,min=1"`
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

	updated, err := st.SubmitPriceRequestResponse(c.Param("id"), req.Offers)
	if err != nil {
		storeError(c, err)
		return
	}

	if notifier != nil && updated.IssuedByID != "" {
		notifier.PriceRequestSubmitted(updated.IssuedByID, &updated)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
	})
}

// ResolvePriceRequest marks a submitted request WON or LOST. Admin only.
func ResolvePriceRequest(c *gin.Context) {
	var req struct {
		Won *bool `json:"won" binding:"required"`
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

	updated, err := st.ResolvePriceRequest(c.Param("id"), *req.Won)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
	})
}
