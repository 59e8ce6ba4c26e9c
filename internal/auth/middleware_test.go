package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/protected", Middleware(secret), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})

	router.GET("/admin-only", AdminMiddleware(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestMiddleware_ValidToken(t *testing.T) {
	router := newTestRouter(testSecret)

	token, err := GenerateToken(testSecret, "user-123", RoleUser)
	require.NoError(t, err)

	w := doRequest(router, "/protected", "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
}

func TestMiddleware_MissingHeader(t *testing.T) {
	router := newTestRouter(testSecret)

	w := doRequest(router, "/protected", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_BadHeaderFormat(t *testing.T) {
	router := newTestRouter(testSecret)

	token, err := GenerateToken(testSecret, "user-123", RoleUser)
	require.NoError(t, err)

	for _, header := range []string{token, "Basic " + token, "Bearer"} {
		w := doRequest(router, "/protected", header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestMiddleware_InvalidToken(t *testing.T) {
	router := newTestRouter(testSecret)

	w := doRequest(router, "/protected", "Bearer not-a-real-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminMiddleware_AdminToken(t *testing.T) {
	router := newTestRouter(testSecret)

	token, err := GenerateToken(testSecret, "admin-1", RoleAdmin)
	require.NoError(t, err)

	w := doRequest(router, "/admin-only", "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminMiddleware_UserTokenForbidden(t *testing.T) {
	router := newTestRouter(testSecret)

	// a valid user token must not open admin routes
	token, err := GenerateToken(testSecret, "user-123", RoleUser)
	require.NoError(t, err)

	w := doRequest(router, "/admin-only", "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "admin access required")
}

func TestAdminMiddleware_NoToken(t *testing.T) {
	router := newTestRouter(testSecret)

	w := doRequest(router, "/admin-only", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
