package controllers

import (
	"strconv"

	"github.com/furkancybercore/PyShop/config"
	"github.com/furkancybercore/PyShop/models"
	"github.com/furkancybercore/PyShop/utils"
	"github.com/gin-gonic/gin"
)

// ProductRequest represents the create/update payload for a product
type ProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,min=0"`
	Stock    int     `json:"stock" binding:"min=0"`
	ImageURL string  `json:"image_url"`
}

// ProductListItem carries the configured list-view columns for products:
// name, price and stock, keyed by the record ID.
type ProductListItem struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// GetProducts handles the admin product list view
func GetProducts(c *gin.Context) {
	utils.LogInfo("GetProducts called")

	var products []ProductListItem
	if err := config.DB.Model(&models.Product{}).
		Select("id, name, price, stock").
		Order("id").
		Scan(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	utils.LogInfo("Successfully fetched %d products", len(products))
	utils.Success(c, "Products retrieved successfully", gin.H{
		"products": products,
	})
}

// GetProduct handles the admin product detail view
func GetProduct(c *gin.Context) {
	utils.LogInfo("GetProduct called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid product ID: %v", err)
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	product, err := utils.GetProductByID(uint(id))
	if err != nil {
		utils.LogError("Product not found: %v", err)
		utils.NotFound(c, utils.ErrProductNotFound)
		return
	}

	utils.Success(c, "Product retrieved successfully", gin.H{
		"product": product,
	})
}

// CreateProduct handles product creation
func CreateProduct(c *gin.Context) {
	utils.LogInfo("CreateProduct called")

	admin, exists := c.Get("admin")
	if !exists {
		utils.LogError("Admin not found in context")
		utils.Unauthorized(c, "Admin not found in context")
		return
	}
	adminModel, ok := admin.(models.Admin)
	if !ok {
		utils.LogError("Invalid admin type in context")
		utils.InternalServerError(c, "Invalid admin type", nil)
		return
	}
	utils.LogDebug("Admin authenticated: %s", adminModel.Email)

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	utils.LogDebug("Received product creation request - Name: %s", req.Name)

	product := models.Product{
		Name:     req.Name,
		Price:    req.Price,
		Stock:    req.Stock,
		ImageURL: req.ImageURL,
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product: %v", err)
		utils.InternalServerError(c, "Failed to create product", err.Error())
		return
	}

	utils.LogInfo("Created product %d: %s", product.ID, product.Name)
	utils.Created(c, "Product created successfully", gin.H{
		"product": product,
	})
}

// UpdateProduct handles product updates
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid product ID: %v", err)
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	product, err := utils.GetProductByID(uint(id))
	if err != nil {
		utils.LogError("Product not found: %v", err)
		utils.NotFound(c, utils.ErrProductNotFound)
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	product.Name = req.Name
	product.Price = req.Price
	product.Stock = req.Stock
	product.ImageURL = req.ImageURL

	if err := utils.UpdateProduct(product); err != nil {
		utils.LogError("Failed to update product: %v", err)
		utils.InternalServerError(c, "Failed to update product", err.Error())
		return
	}

	utils.LogInfo("Updated product %d: %s", product.ID, product.Name)
	utils.Success(c, "Product updated successfully", gin.H{
		"product": product,
	})
}

// DeleteProduct handles product deletion
func DeleteProduct(c *gin.Context) {
	utils.LogInfo("DeleteProduct called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid product ID: %v", err)
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	if _, err := utils.GetProductByID(uint(id)); err != nil {
		utils.LogError("Product not found: %v", err)
		utils.NotFound(c, utils.ErrProductNotFound)
		return
	}

	if err := utils.DeleteProduct(uint(id)); err != nil {
		utils.LogError("Failed to delete product: %v", err)
		utils.InternalServerError(c, "Failed to delete product", err.Error())
		return
	}

	utils.LogInfo("Deleted product %d", id)
	utils.Success(c, "Product deleted successfully", nil)
}
