package controllers

import (
	"net/http"
	"testing"

	"github.com/furkancybercore/PyShop/utils"
	"github.com/stretchr/testify/assert"
)

func TestAdminLoginSuccess(t *testing.T) {
	utils.TestSetup(t)
	defer utils.TestTeardown(t)
	t.Setenv("JWT_SECRET", "test-secret")

	router := setupTestRouter()
	utils.CreateTestAdmin(t, "Admin123!")

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method: http.MethodPost,
		Path:   "/v1/admin/login",
		Body: map[string]interface{}{
			"email":    "admin@example.com",
			"password": "Admin123!",
		},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := resp.Body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestAdminLoginWrongPassword(t *testing.T) {
	utils.TestSetup(t)
	defer utils.TestTeardown(t)
	t.Setenv("JWT_SECRET", "test-secret")

	router := setupTestRouter()
	utils.CreateTestAdmin(t, "Admin123!")

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method: http.MethodPost,
		Path:   "/v1/admin/login",
		Body: map[string]interface{}{
			"email":    "admin@example.com",
			"password": "wrong-password",
		},
	})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminLoginUnknownEmail(t *testing.T) {
	utils.TestSetup(t)
	defer utils.TestTeardown(t)
	t.Setenv("JWT_SECRET", "test-secret")

	router := setupTestRouter()

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method: http.MethodPost,
		Path:   "/v1/admin/login",
		Body: map[string]interface{}{
			"email":    "nobody@example.com",
			"password": "Admin123!",
		},
	})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminLogoutBlacklistsToken(t *testing.T) {
	utils.TestSetup(t)
	defer utils.TestTeardown(t)
	t.Setenv("JWT_SECRET", "test-secret")

	router := setupTestRouter()
	admin := utils.CreateTestAdmin(t, "Admin123!")
	token := utils.GetTestAdminToken(t, admin)
	auth := map[string]string{"Authorization": "Bearer " + token}

	// Token works before logout
	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method:  http.MethodGet,
		Path:    "/v1/admin/products",
		Headers: auth,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = utils.MakeTestRequest(t, router, utils.TestRequest{
		Method:  http.MethodPost,
		Path:    "/v1/admin/logout",
		Headers: auth,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Blacklisted token is rejected afterwards
	resp = utils.MakeTestRequest(t, router, utils.TestRequest{
		Method:  http.MethodGet,
		Path:    "/v1/admin/products",
		Headers: auth,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
