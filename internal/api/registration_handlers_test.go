package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"agrilink-backend/internal/middleware"
	"agrilink-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registrationRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	router, st, authService := newTestRouter(t)
	authMW := middleware.NewAuthMiddleware(authService)

	router.POST("/registrations", CreateRegistrationRequest)
	router.GET("/forms/:role", GetFormTemplate)

	g := router.Group("", authMW.AuthRequired(), authMW.RequireRoles("ADMIN"))
	g.GET("/registrations", GetRegistrationRequests)
	g.POST("/registrations/:id/approve", ApproveRegistration)
	g.POST("/registrations/:id/reject", RejectRegistration)

	return router, tokenFor(t, st, authService, "a1")
}

func TestCreateRegistrationRequestEndpoint(t *testing.T) {
	router, _ := registrationRouter(t)

	w := performRequest(router, http.MethodPost, "/registrations", "", gin.H{
		"role":         "CONSUMER",
		"businessName": "Lakeview Bistro",
		"contactName":  "Akinyi Otieno",
		"email":        "Lakeview@Example.com",
		"phone":        "+254722000001",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data models.RegistrationRequest `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.RegistrationStatusPending, resp.Data.Status)
	assert.Equal(t, "lakeview@example.com", resp.Data.Email)
}

func TestCreateRegistrationRejectsAdminRole(t *testing.T) {
	router, _ := registrationRouter(t)

	w := performRequest(router, http.MethodPost, "/registrations", "", gin.H{
		"role":         "ADMIN",
		"businessName": "Sneaky Admins Inc",
		"contactName":  "Nope",
		"email":        "nope@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApproveRegistrationOnce(t *testing.T) {
	router, admin := registrationRouter(t)

	// Seeded reg-1 is a pending consumer request.
	w := performRequest(router, http.MethodPost, "/registrations/reg-1/approve", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			User     models.User      `json:"user"`
			Customer *models.Customer `json:"customer"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.UserRoleConsumer, resp.Data.User.Role)
	require.NotNil(t, resp.Data.Customer)
	assert.Equal(t, models.ConnectionStatusActive, resp.Data.Customer.ConnectionStatus)

	// A second approval is refused at the handler.
	w = performRequest(router, http.MethodPost, "/registrations/reg-1/approve", admin, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRejectRegistrationEndpoint(t *testing.T) {
	router, admin := registrationRouter(t)

	w := performRequest(router, http.MethodPost, "/registrations/reg-2/reject", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.RegistrationRequest `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.RegistrationStatusRejected, resp.Data.Status)

	// Rejected requests cannot be approved afterwards.
	w = performRequest(router, http.MethodPost, "/registrations/reg-2/approve", admin, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetFormTemplateEndpoint(t *testing.T) {
	router, _ := registrationRouter(t)

	w := performRequest(router, http.MethodGet, "/forms/consumer", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.FormTemplate `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.UserRoleConsumer, resp.Data.Role)
	assert.NotEmpty(t, resp.Data.Fields)

	w = performRequest(router, http.MethodGet, "/forms/astronaut", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
