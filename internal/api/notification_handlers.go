package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetNotifications returns the caller's notification feed, newest first
func GetNotifications(c *gin.Context) {
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
		"data":    st.GetAppNotifications(userID),
	})
}

// MarkNotificationRead flags one feed entry as read
func MarkNotificationRead(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	if err := st.MarkNotificationRead(c.Param("id")); err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"message": "Notification marked read"},
	})
}

// MarkAllNotificationsRead flags the caller's whole feed as read
func MarkAllNotificationsRead(c *gin.Context) {
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

	count := st.MarkAllNotificationsRead(userID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"updated": count},
	})
}
