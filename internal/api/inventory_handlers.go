package api

import (
	"net/http"

	"agrilink-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// GetInventory returns inventory lots. Sellers see their own; admins can pass
// ?sellerId= to inspect any seller, or nothing for the whole warehouse.
func GetInventory(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	sellerID := c.Query("sellerId")
	if sellerID == "" && c.GetString("userRole") != string(models.UserRoleAdmin) {
		sellerID = c.GetString("userID")
	}

	if sellerID == "" {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    st.GetAllInventory(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    st.GetInventory(sellerID),
	})
}

// GetInventoryItem returns one lot
func GetInventoryItem(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	item, err := st.GetInventoryItem(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    item,
	})
}

// AddInventoryItem lists a new lot for the calling seller
func AddInventoryItem(c *gin.Context) {
	var req struct {
		ProductID         string  `json:"productId" binding:"required"`
		QuantityKg        float64 `json:"quantityKg" binding:"required,gt=0"`
		Unit              string  `json:"unit"`
		HarvestLocation   string  `json:"harvestLocation"`
		WarehouseLocation string  `json:"warehouseLocation"`
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

	if _, err := st.GetProduct(req.ProductID); err != nil {
		storeError(c, err)
		return
	}

	item, err := st.AddInventoryItem(models.InventoryItem{
		SellerID:          c.GetString("userID"),
		ProductID:         req.ProductID,
		QuantityKg:        req.QuantityKg,
		Unit:              req.Unit,
		HarvestLocation:   req.HarvestLocation,
		WarehouseLocation: req.WarehouseLocation,
	})
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    item,
	})
}

// MarkLotDonated flags a lot as donated, taking it off the market
func MarkLotDonated(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	item, err := st.MarkLotDonated(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    item,
	})
}

// SetDiscountRule attaches an age-based mark-down rule to a lot
func SetDiscountRule(c *gin.Context) {
	var req models.DiscountRule
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request data: " + err.Error(),
		})
		return
	}

	if req.AfterDays <= 0 || req.DiscountPercent <= 0 || req.DiscountPercent > 100 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Discount rule values out of range",
		})
		return
	}

	st, ok := getStore(c)
	if !ok {
		return
	}

	item, err := st.SetDiscountRule(c.Param("id"), req)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    item,
	})
}

// GetPricingRules lists all active discount rules
func GetPricingRules(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    st.GetPricingRules(),
	})
}

// VerifyPrice stamps a lot as price-verified. When a price is supplied it
// also becomes the product's current catalog price.
func VerifyPrice(c *gin.Context) {
	var req struct {
		PricePerKg *float64 `json:"pricePerKg"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request data: " + err.Error(),
		})
		return
	}

	if req.PricePerKg != nil && *req.PricePerKg <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Price must be positive",
		})
		return
	}

	st, ok := getStore(c)
	if !ok {
		return
	}

	item, err := st.VerifyPrice(c.Param("id"), req.PricePerKg)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    item,
	})
}
