package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performResponse(send func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	send(c)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
	return body
}

func TestSuccessResponse(t *testing.T) {
	w := performResponse(func(c *gin.Context) {
		Success(c, "All good", gin.H{"value": 42})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeResponse(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "All good", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(42), data["value"])
}

func TestCreatedResponse(t *testing.T) {
	w := performResponse(func(c *gin.Context) {
		Created(c, "Record created", nil)
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeResponse(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Record created", body["message"])
	assert.NotContains(t, body, "data")
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		send       func(c *gin.Context)
		wantStatus int
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "Invalid input", "details") }, http.StatusBadRequest},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "Please login") }, http.StatusUnauthorized},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "No access") }, http.StatusForbidden},
		{"not found", func(c *gin.Context) { NotFound(c, "Missing") }, http.StatusNotFound},
		{"conflict", func(c *gin.Context) { Conflict(c, "Duplicate", nil) }, http.StatusConflict},
		{"internal", func(c *gin.Context) { InternalServerError(c, "Boom", nil) }, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performResponse(tt.send)
			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeResponse(t, w)
			assert.Equal(t, "error", body["status"])
		})
	}
}

func TestBadRequestIncludesErrorDetails(t *testing.T) {
	w := performResponse(func(c *gin.Context) {
		BadRequest(c, "Invalid input", "name is required")
	})

	body := decodeResponse(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "name is required", data["error"])
}
