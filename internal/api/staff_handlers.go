package api

import (
	"net/http"

	"agrilink-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// GetDrivers lists drivers. Wholesalers see their own roster; admins can pass
// ?wholesalerId= or nothing for everyone.
func GetDrivers(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	wholesalerID := c.Query("wholesalerId")
	if wholesalerID == "" && c.GetString("userRole") != string(models.UserRoleAdmin) {
		wholesalerID = c.GetString("userID")
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    st.GetDrivers(wholesalerID),
	})
}

// AddDriver adds a driver to the calling wholesaler's roster
func AddDriver(c *gin.Context) {
	var req struct {
		Name       string `json:"name" binding:"required"`
		Phone      string `json:"phone"`
		VehicleReg string `json:"vehicleReg"`
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

	driver, err := st.AddDriver(models.Driver{
		WholesalerID: c.GetString("userID"),
		Name:         req.Name,
		Phone:        req.Phone,
		VehicleReg:   req.VehicleReg,
	})
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    driver,
	})
}

// GetPackers lists packers, scoped the same way as drivers
func GetPackers(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	wholesalerID := c.Query("wholesalerId")
	if wholesalerID == "" && c.GetString("userRole") != string(models.UserRoleAdmin) {
		wholesalerID = c.GetString("userID")
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    st.GetPackers(wholesalerID),
	})
}

// AddPacker adds a packer to the calling wholesaler's roster
func AddPacker(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Phone string `json:"phone"`
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

	packer, err := st.AddPacker(models.Packer{
		WholesalerID: c.GetString("userID"),
		Name:         req.Name,
		Phone:        req.Phone,
	})
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    packer,
	})
}
