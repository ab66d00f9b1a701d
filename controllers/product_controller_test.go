package controllers

import (
	"net/http"
	"testing"

	"github.com/furkancybercore/PyShop/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewProductsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/new", NewProducts)

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method: http.MethodGet,
		Path:   "/new",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "New Products", resp.RawBody)
}

func TestIndexListsAllProducts(t *testing.T) {
	utils.TestSetup(t)
	defer utils.TestTeardown(t)

	router := setupTestRouter()

	first := utils.CreateTestProduct(t)
	second := utils.CreateTestProduct(t)
	second.Name = "Second Product"
	if err := utils.UpdateProduct(second); err != nil {
		t.Fatalf("Failed to rename product: %v", err)
	}

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method: http.MethodGet,
		Path:   "/",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.RawBody, first.Name)
	assert.Contains(t, resp.RawBody, second.Name)
}

func TestIndexWithEmptyCatalog(t *testing.T) {
	utils.TestSetup(t)
	defer utils.TestTeardown(t)

	router := setupTestRouter()

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method: http.MethodGet,
		Path:   "/",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.RawBody, "No products available")
}

func TestDeletedProductDisappearsFromIndex(t *testing.T) {
	utils.TestSetup(t)
	defer utils.TestTeardown(t)

	router := setupTestRouter()

	product := utils.CreateTestProduct(t)
	if err := utils.DeleteProduct(product.ID); err != nil {
		t.Fatalf("Failed to delete product: %v", err)
	}

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method: http.MethodGet,
		Path:   "/",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, resp.RawBody, product.Name)
}
