package api

import (
	"net/http"

	"agrilink-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// GetProducts returns the shared produce catalog
func GetProducts(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    st.GetAllProducts(),
	})
}

// GetProduct returns one catalog entry
func GetProduct(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	product, err := st.GetProduct(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    product,
	})
}

// CreateProduct adds a catalog entry. Admin only.
func CreateProduct(c *gin.Context) {
	var req struct {
		Name              string                 `json:"name" binding:"required"`
		Category          models.ProductCategory `json:"category" binding:"required"`
		Variety           string                 `json:"variety"`
		ImageURL          string                 `json:"imageUrl"`
		DefaultPricePerKg float64                `json:"defaultPricePerKg" binding:"required,gt=0"`
		Unit              string                 `json:"unit"`
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

	product, err := st.AddProduct(models.Product{
		Name:              req.Name,
		Category:          req.Category,
		Variety:           req.Variety,
		ImageURL:          req.ImageURL,
		DefaultPricePerKg: req.DefaultPricePerKg,
		Unit:              req.Unit,
	})
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    product,
	})
}

// UpdateProductPricing changes a product's catalog price and unit. The price
// is shared across every seller's listings of the product.
func UpdateProductPricing(c *gin.Context) {
	var req struct {
		PricePerKg float64 `json:"pricePerKg" binding:"required,gt=0"`
		Unit       string  `json:"unit"`
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

	var (
		product models.Product
		err     error
	)
	if req.Unit != "" {
		product, err = st.UpdateProductPricing(c.Param("id"), req.PricePerKg, req.Unit)
	} else {
		product, err = st.UpdateProductPrice(c.Param("id"), req.PricePerKg)
	}
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    product,
	})
}
