package api

import (
	"net/http"
	"strings"

	"agrilink-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// GetRegistrationRequests lists signup requests. Admin only.
func GetRegistrationRequests(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    st.GetRegistrationRequests(),
	})
}

// GetRegistrationRequest returns one signup request
func GetRegistrationRequest(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	req, err := st.GetRegistrationRequest(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    req,
	})
}

// CreateRegistrationRequest files a signup request. Public endpoint.
func CreateRegistrationRequest(c *gin.Context) {
	var req struct {
		Role         models.UserRole         `json:"role" binding:"required"`
		BusinessName string                  `json:"businessName" binding:"required"`
		ContactName  string                  `json:"contactName" binding:"required"`
		Email        string                  `json:"email" binding:"required,email"`
		Phone        string                  `json:"phone"`
		Consumer     *models.ConsumerDetails `json:"consumer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request data: " + err.Error(),
		})
		return
	}

	switch req.Role {
	case models.UserRoleWholesaler, models.UserRoleFarmer, models.UserRoleConsumer:
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Role cannot register through signup",
		})
		return
	}

	st, ok := getStore(c)
	if !ok {
		return
	}

	created, err := st.CreateRegistrationRequest(models.RegistrationRequest{
		Role:         req.Role,
		BusinessName: req.BusinessName,
		ContactName:  req.ContactName,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		Consumer:     req.Consumer,
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

// ApproveRegistration approves a pending signup, creating the user account
// and, for consumers, a connected customer record. Requests already decided
// are rejected here; the store-level approval itself does not check.
func ApproveRegistration(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	req, err := st.GetRegistrationRequest(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}

	if req.Status != models.RegistrationStatusPending {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   "Registration request is already " + string(req.Status),
		})
		return
	}

	user, customer, err := st.ApproveRegistration(req.ID)
	if err != nil {
		storeError(c, err)
		return
	}

	if notifier != nil {
		decided, derr := st.GetRegistrationRequest(req.ID)
		if derr == nil {
			notifier.RegistrationDecided(c.GetString("userID"), &decided)
		}
	}

	data := gin.H{"user": user}
	if customer != nil {
		data["customer"] = customer
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// RejectRegistration declines a signup request
func RejectRegistration(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	req, err := st.RejectRegistration(c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}

	if notifier != nil {
		notifier.RegistrationDecided(c.GetString("userID"), &req)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    req,
	})
}

// GetFormTemplate returns the signup form definition for a role
func GetFormTemplate(c *gin.Context) {
	st, ok := getStore(c)
	if !ok {
		return
	}

	role := models.UserRole(strings.ToUpper(c.Param("role")))
	tpl, err := st.GetFormTemplate(role)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tpl,
	})
}
