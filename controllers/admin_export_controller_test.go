package controllers

import (
	"net/http"
	"testing"

	"github.com/furkancybercore/PyShop/utils"
	"github.com/stretchr/testify/assert"
)

func TestDownloadProductsExcel(t *testing.T) {
	utils.TestSetup(t)
	defer utils.TestTeardown(t)
	t.Setenv("JWT_SECRET", "test-secret")

	router := setupTestRouter()
	admin := utils.CreateTestAdmin(t, "Admin123!")
	token := utils.GetTestAdminToken(t, admin)
	utils.CreateTestProduct(t)

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method:  http.MethodGet,
		Path:    "/v1/admin/reports/products/excel",
		Headers: map[string]string{"Authorization": "Bearer " + token},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.RawBody)
}

func TestDownloadProductsPDF(t *testing.T) {
	utils.TestSetup(t)
	defer utils.TestTeardown(t)
	t.Setenv("JWT_SECRET", "test-secret")

	router := setupTestRouter()
	admin := utils.CreateTestAdmin(t, "Admin123!")
	token := utils.GetTestAdminToken(t, admin)
	utils.CreateTestProduct(t)

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method:  http.MethodGet,
		Path:    "/v1/admin/reports/products/pdf",
		Headers: map[string]string{"Authorization": "Bearer " + token},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.RawBody)
}
