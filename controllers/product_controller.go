package controllers

import (
	"net/http"

	"github.com/furkancybercore/PyShop/config"
	"github.com/furkancybercore/PyShop/models"
	"github.com/furkancybercore/PyShop/utils"
	"github.com/gin-gonic/gin"
)

// Index renders the public product listing page with every stored product
func Index(c *gin.Context) {
	utils.LogInfo("Index called")

	var products []models.Product
	if err := config.DB.Order("id").Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.LogDebug("Fetched %d products for listing page", len(products))

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":    "Products",
		"products": products,
	})
}

// NewProducts returns the static new products page
func NewProducts(c *gin.Context) {
	utils.LogInfo("NewProducts called")
	c.String(http.StatusOK, "New Products")
}
