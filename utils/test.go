package utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/furkancybercore/PyShop/config"
	"github.com/furkancybercore/PyShop/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestSetup initializes the test environment. Tests that need a database
// are skipped when DB_HOST is not configured.
func TestSetup(t *testing.T) {
	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST not set, skipping database-backed test")
	}

	// .env is optional here, connection settings may be exported directly
	if _, err := config.LoadConfig(); err != nil {
		t.Logf("No .env file loaded: %v", err)
	}

	config.InitDB()

	ClearTestData()
}

// TestTeardown cleans up the test environment
func TestTeardown(t *testing.T) {
	ClearTestData()
}

// ClearTestData clears all test data from the database
func ClearTestData() {
	config.DB.Exec("TRUNCATE TABLE products CASCADE")
	config.DB.Exec("TRUNCATE TABLE offers CASCADE")
	config.DB.Exec("TRUNCATE TABLE admins CASCADE")
	config.DB.Exec("TRUNCATE TABLE blacklisted_tokens CASCADE")
}

// CreateTestProduct creates a test product
func CreateTestProduct(t *testing.T) *models.Product {
	product := &models.Product{
		Name:     "Test Product",
		Price:    99.99,
		Stock:    100,
		ImageURL: "https://example.com/test.jpg",
	}

	if err := CreateProduct(product); err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}

	return product
}

// CreateTestOffer creates a test offer
func CreateTestOffer(t *testing.T) *models.Offer {
	offer := &models.Offer{
		Code:        "TEST10",
		Description: "Test Offer",
		Discount:    10.0,
	}

	if err := CreateOffer(offer); err != nil {
		t.Fatalf("Failed to create test offer: %v", err)
	}

	return offer
}

// CreateTestAdmin creates a test admin with the given password hashed
func CreateTestAdmin(t *testing.T, password string) *models.Admin {
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	admin := &models.Admin{
		Email:    "admin@example.com",
		Password: hash,
		IsActive: true,
	}

	if err := CreateAdmin(admin); err != nil {
		t.Fatalf("Failed to create test admin: %v", err)
	}

	return admin
}

// TestRequest represents a test HTTP request
type TestRequest struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// TestResponse represents a test HTTP response
type TestResponse struct {
	StatusCode int
	Body       map[string]interface{}
	RawBody    string
}

// MakeTestRequest makes a test HTTP request
func MakeTestRequest(t *testing.T, router *gin.Engine, req TestRequest) TestResponse {
	var body []byte
	if req.Body != nil {
		var err error
		body, err = json.Marshal(req.Body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
	}

	httpReq, err := http.NewRequest(req.Method, req.Path, bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httpReq)

	var responseBody map[string]interface{}
	if w.Body.Len() > 0 {
		// Non-JSON bodies (HTML, plain text) stay in RawBody only
		_ = json.Unmarshal(w.Body.Bytes(), &responseBody)
	}

	return TestResponse{
		StatusCode: w.Code,
		Body:       responseBody,
		RawBody:    w.Body.String(),
	}
}

// AssertResponse asserts the test response
func AssertResponse(t *testing.T, response TestResponse, expectedStatusCode int, expectedBody map[string]interface{}) {
	assert.Equal(t, expectedStatusCode, response.StatusCode)
	if expectedBody != nil {
		assert.Equal(t, expectedBody, response.Body)
	}
}

// GetTestAdminToken generates a test JWT token for an admin
func GetTestAdminToken(t *testing.T, admin *models.Admin) string {
	token, err := GenerateAdminToken(admin)
	if err != nil {
		t.Fatalf("Failed to generate test admin token: %v", err)
	}
	return token
}
