package api

import (
	"net/http"

	"agrilink-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GetChatMessages returns the conversation between the caller and one peer
func GetChatMessages(c *gin.Context) {
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
		"data":    st.GetChatMessages(userID, c.Param("userId")),
	})
}

// SendChatMessage appends a message to a conversation over plain HTTP. The
// websocket path is preferred; this exists for clients without a socket.
func SendChatMessage(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "User not authenticated",
		})
		return
	}

	var req struct {
		Text string `json:"text" binding:"required"`
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

	receiverID := c.Param("userId")
	msg := st.AddChatMessage(userID, receiverID, req.Text)

	if wsHub != nil {
		out := services.WSMessage{Type: "chat", Payload: msg}
		wsHub.SendToUser(receiverID, out)
		wsHub.SendToUser(userID, out)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    msg,
	})
}

// HandleWebSocket upgrades the request to a websocket connection
func HandleWebSocket(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "User not authenticated",
		})
		return
	}

	if wsHub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "WebSocket service not available",
		})
		return
	}

	if err := wsHub.ServeWS(c.Writer, c.Request, userID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "WebSocket upgrade failed: " + err.Error(),
		})
	}
}
