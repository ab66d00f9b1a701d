package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newSessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("test-session-key"))
	r.Use(sessions.Sessions("pyshop", store))
	return r
}

func TestAdminSessionRoundTrip(t *testing.T) {
	r := newSessionRouter()
	r.GET("/login", func(c *gin.Context) {
		assert.NoError(t, SetAdminSession(c, 42))
		c.Status(http.StatusOK)
	})
	r.GET("/check", func(c *gin.Context) {
		id, ok := GetAdminSession(c)
		assert.True(t, ok)
		assert.Equal(t, uint(42), id)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Replay the session cookie on the follow-up request
	req := httptest.NewRequest(http.MethodGet, "/check", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestClearAdminSession(t *testing.T) {
	r := newSessionRouter()
	r.GET("/login", func(c *gin.Context) {
		assert.NoError(t, SetAdminSession(c, 7))
		assert.NoError(t, ClearAdminSession(c))
		_, ok := GetAdminSession(c)
		assert.False(t, ok)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetAdminSessionEmpty(t *testing.T) {
	r := newSessionRouter()
	r.GET("/check", func(c *gin.Context) {
		_, ok := GetAdminSession(c)
		assert.False(t, ok)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/check", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
