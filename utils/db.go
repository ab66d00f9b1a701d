package utils

import (
	"github.com/furkancybercore/PyShop/config"
	"github.com/furkancybercore/PyShop/models"
)

// CreateProduct creates a new product
func CreateProduct(product *models.Product) error {
	return config.DB.Create(product).Error
}

// GetProductByID retrieves a product by ID
func GetProductByID(id uint) (*models.Product, error) {
	var product models.Product
	err := config.DB.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct updates a product
func UpdateProduct(product *models.Product) error {
	return config.DB.Save(product).Error
}

// DeleteProduct deletes a product
func DeleteProduct(id uint) error {
	return config.DB.Delete(&models.Product{}, id).Error
}

// CreateOffer creates a new offer
func CreateOffer(offer *models.Offer) error {
	return config.DB.Create(offer).Error
}

// GetOfferByID retrieves an offer by ID
func GetOfferByID(id uint) (*models.Offer, error) {
	var offer models.Offer
	err := config.DB.First(&offer, id).Error
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

// UpdateOffer updates an offer
func UpdateOffer(offer *models.Offer) error {
	return config.DB.Save(offer).Error
}

// DeleteOffer deletes an offer
func DeleteOffer(id uint) error {
	return config.DB.Delete(&models.Offer{}, id).Error
}

// CreateAdmin creates a new admin
func CreateAdmin(admin *models.Admin) error {
	return config.DB.Create(admin).Error
}

// GetAdminByEmail retrieves an admin by email
func GetAdminByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	err := config.DB.Where("email = ?", email).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
