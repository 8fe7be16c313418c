package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agrilink-backend/internal/middleware"
	"agrilink-backend/internal/services"
	"agrilink-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter builds a router with the seeded store injected, mirroring the
// middleware chain used in main.
func newTestRouter(t *testing.T) (*gin.Engine, *store.Store, *services.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New()
	authService := services.NewAuthService("test-secret", 3600)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("store", st)
		c.Next()
	})

	return router, st, authService
}

// tokenFor logs a seeded user in directly through the auth service.
func tokenFor(t *testing.T, st *store.Store, authService *services.AuthService, userID string) string {
	t.Helper()
	user, err := st.GetUser(userID)
	require.NoError(t, err)
	token, err := authService.GenerateToken(&user)
	require.NoError(t, err)
	return token
}

func performRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	router, _, authService := newTestRouter(t)
	handlers := NewAuthHandlers(authService)
	router.POST("/auth/login", handlers.Login)

	w := performRequest(router, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "admin@agrilink.example",
		"password": "agrilink123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
			User  struct {
				ID   string `json:"id"`
				Role string `json:"role"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.Token)
	assert.Equal(t, "a1", resp.Data.User.ID)
	assert.Equal(t, "ADMIN", resp.Data.User.Role)

	claims, err := authService.ValidateToken(resp.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, "a1", claims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	router, _, authService := newTestRouter(t)
	handlers := NewAuthHandlers(authService)
	router.POST("/auth/login", handlers.Login)

	w := performRequest(router, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "admin@agrilink.example",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	router, _, authService := newTestRouter(t)
	handlers := NewAuthHandlers(authService)
	router.POST("/auth/login", handlers.Login)

	w := performRequest(router, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "nobody@agrilink.example",
		"password": "agrilink123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	router, st, authService := newTestRouter(t)
	handlers := NewAuthHandlers(authService)
	authMW := middleware.NewAuthMiddleware(authService)
	router.POST("/auth/logout", handlers.Logout)
	router.GET("/auth/me", authMW.AuthRequired(), handlers.Me)

	token := tokenFor(t, st, authService, "a1")

	w := performRequest(router, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeWithoutToken(t *testing.T) {
	router, _, authService := newTestRouter(t)
	handlers := NewAuthHandlers(authService)
	authMW := middleware.NewAuthMiddleware(authService)
	router.GET("/auth/me", authMW.AuthRequired(), handlers.Me)

	w := performRequest(router, http.MethodGet, "/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleGate(t *testing.T) {
	router, st, authService := newTestRouter(t)
	authMW := middleware.NewAuthMiddleware(authService)
	router.GET("/users", authMW.AuthRequired(), authMW.RequireRoles("ADMIN"), GetUsers)

	adminToken := tokenFor(t, st, authService, "a1")
	buyerToken := tokenFor(t, st, authService, "c1")

	w := performRequest(router, http.MethodGet, "/users", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodGet, "/users", buyerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
