package api

import (
	"net/http"

	"agrilink-backend/internal/services"
	"agrilink-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// Package-level collaborators, set once at startup from main.
var (
	notifier      *services.Notifier
	visionService *services.VisionService
	smsService    *services.SMSService
	wsHub         *services.Hub
)

// InitializeServices wires the handler package to its collaborators.
func InitializeServices(n *services.Notifier, vs *services.VisionService, sms *services.SMSService, hub *services.Hub) {
	notifier = n
	visionService = vs
	smsService = sms
	wsHub = hub
}

// getStore pulls the data store out of the gin context. It writes the error
// response itself, so callers just return on !ok.
func getStore(c *gin.Context) (*store.Store, bool) {
	st, exists := c.Get("store")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Data store not available",
		})
		return nil, false
	}
	return st.(*store.Store), true
}

// storeError maps store sentinel errors onto HTTP responses.
func storeError(c *gin.Context, err error) {
	switch err {
	case store.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Resource not found",
		})
	case store.ErrInsufficientStock:
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   "Insufficient stock to fulfil the order",
		})
	case store.ErrInvalidTransition:
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   "Operation not allowed in the current state",
		})
	case store.ErrAlreadyResolved:
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   "Request has already been answered",
		})
	case store.ErrDuplicateEmail:
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   "Email is already registered",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
	}
}
