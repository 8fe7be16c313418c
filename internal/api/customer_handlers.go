package api

import (
	"net/http"

	"agrilink-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// GetCustomers returns all customer businesses. Admin only.
func GetCustomers(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    st.GetCustomers(),
	})
}

// GetCustomer returns one customer record
func GetCustomer(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	customer, err := st.GetCustomer(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customer,
	})
}

// CreateCustomer onboards a customer business manually. New records start in
// Pending Connection unless a status is supplied.
func CreateCustomer(c *gin.Context) {
	var req models.Customer
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request data: " + err.Error(),
		})
		return
	}

	if req.BusinessName == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Business name is required",
		})
		return
	}

	st, ok := getStore(c)
	if !ok {
		return
	}

	customer, err := st.CreateCustomer(req)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    customer,
	})
}

// UpdateCustomer edits a customer's business details
func UpdateCustomer(c *gin.Context) {
	var req models.Customer
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

	customer, err := st.UpdateCustomer(c.Param("id"), req)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customer,
	})
}

// UpdateCustomerConnection pairs a customer with a supplier, rep and markup
func UpdateCustomerConnection(c *gin.Context) {
	var req models.CustomerConnectionUpdate
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

	customer, err := st.UpdateCustomerConnection(c.Param("id"), req)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customer,
	})
}

// FindBuyersForProduct suggests customers whose usual purchases mention the
// product. Matching is a case-insensitive substring check over the free-text
// CommonProducts field, so "Tomato" also matches "Tomatoes".
func FindBuyersForProduct(c *gin.Context) {
	product := c.Query("product")
	if product == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "product query parameter is required",
		})
		return
	}

	st, ok := getStore(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    st.FindBuyersForProduct(product),
	})
}
