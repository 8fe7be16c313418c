package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ComposeSMSLink builds an sms: deep link the client opens in the device's
// messaging app. Nothing is sent server-side.
func ComposeSMSLink(c *gin.Context) {
	if smsService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "SMS service not available",
		})
		return
	}

	var req struct {
		PhoneNumber string `json:"phoneNumber" binding:"required"`
		Body        string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request data: " + err.Error(),
		})
		return
	}

	link, err := smsService.ComposeLink(req.PhoneNumber, req.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"link": link},
	})
}
