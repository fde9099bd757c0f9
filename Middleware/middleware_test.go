package Middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"DoctorsPortal/Middleware"
	"DoctorsPortal/Models"
	"DoctorsPortal/Utils/Token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter(t *testing.T, users Models.UserStore, admin bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	group := router.Group("/")
	group.Use(Middleware.JwtAuthMiddleware())
	if admin {
		group.Use(Middleware.AdminCheck(users))
	}
	group.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(Middleware.DecodedEmail)})
	})
	return router
}

func get(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestJwtAuthMiddleware(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	router := newGuardedRouter(t, &Models.MemoryUsers{}, false)

	t.Run("MissingHeaderIs401", func(t *testing.T) {
		resp := get(router, "")
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("MalformedHeaderIs403", func(t *testing.T) {
		resp := get(router, "Bearer")
		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("InvalidTokenIs403", func(t *testing.T) {
		resp := get(router, "Bearer garbage")
		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("ValidTokenAttachesEmail", func(t *testing.T) {
		token, err := Token.GenerateToken("alice@example.com")
		require.NoError(t, err)

		resp := get(router, "Bearer "+token)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "alice@example.com")
	})
}

func TestAdminCheck(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	users := &Models.MemoryUsers{}
	require.NoError(t, users.Upsert(context.Background(), "admin@example.com", Models.User{Name: "Admin"}))
	_, err := users.GrantAdmin(context.Background(), "admin@example.com")
	require.NoError(t, err)
	require.NoError(t, users.Upsert(context.Background(), "bob@example.com", Models.User{Name: "Bob"}))

	router := newGuardedRouter(t, users, true)

	t.Run("AdminPasses", func(t *testing.T) {
		token, err := Token.GenerateToken("admin@example.com")
		require.NoError(t, err)
		resp := get(router, "Bearer "+token)
		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("NonAdminIs403", func(t *testing.T) {
		token, err := Token.GenerateToken("bob@example.com")
		require.NoError(t, err)
		resp := get(router, "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("UnknownUserIs403NotError", func(t *testing.T) {
		token, err := Token.GenerateToken("ghost@example.com")
		require.NoError(t, err)
		resp := get(router, "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, resp.Code)
	})
}
