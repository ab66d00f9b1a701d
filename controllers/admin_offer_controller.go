package controllers

import (
	"strconv"

	"github.com/furkancybercore/PyShop/config"
	"github.com/furkancybercore/PyShop/models"
	"github.com/furkancybercore/PyShop/utils"
	"github.com/gin-gonic/gin"
)

// OfferRequest represents the create/update payload for an offer
type OfferRequest struct {
	Code        string  `json:"code" binding:"required"`
	Description string  `json:"description"`
	Discount    float64 `json:"discount" binding:"min=0"`
}

// OfferListItem carries the configured list-view columns for offers:
// code and discount, keyed by the record ID.
type OfferListItem struct {
	ID       uint    `json:"id"`
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
}

// GetOffers handles the admin offer list view
func GetOffers(c *gin.Context) {
	utils.LogInfo("GetOffers called")

	var offers []OfferListItem
	if err := config.DB.Model(&models.Offer{}).
		Select("id, code, discount").
		Order("id").
		Scan(&offers).Error; err != nil {
		utils.LogError("Failed to fetch offers: %v", err)
		utils.InternalServerError(c, "Failed to fetch offers", err.Error())
		return
	}

	utils.LogInfo("Successfully fetched %d offers", len(offers))
	utils.Success(c, "Offers retrieved successfully", gin.H{
		"offers": offers,
	})
}

// GetOffer handles the admin offer detail view
func GetOffer(c *gin.Context) {
	utils.LogInfo("GetOffer called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid offer ID: %v", err)
		utils.BadRequest(c, "Invalid offer ID", nil)
		return
	}

	offer, err := utils.GetOfferByID(uint(id))
	if err != nil {
		utils.LogError("Offer not found: %v", err)
		utils.NotFound(c, utils.ErrOfferNotFound)
		return
	}

	utils.Success(c, "Offer retrieved successfully", gin.H{
		"offer": offer,
	})
}

// CreateOffer handles offer creation
func CreateOffer(c *gin.Context) {
	utils.LogInfo("CreateOffer called")

	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	utils.LogDebug("Received offer creation request - Code: %s", req.Code)

	offer := models.Offer{
		Code:        req.Code,
		Description: req.Description,
		Discount:    req.Discount,
	}

	if err := config.DB.Create(&offer).Error; err != nil {
		utils.LogError("Failed to create offer: %v", err)
		utils.InternalServerError(c, "Failed to create offer", err.Error())
		return
	}

	utils.LogInfo("Created offer %d: %s", offer.ID, offer.Code)
	utils.Created(c, "Offer created successfully", gin.H{
		"offer": offer,
	})
}

// UpdateOffer handles offer updates
func UpdateOffer(c *gin.Context) {
	utils.LogInfo("UpdateOffer called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid offer ID: %v", err)
		utils.BadRequest(c, "Invalid offer ID", nil)
		return
	}

	offer, err := utils.GetOfferByID(uint(id))
	if err != nil {
		utils.LogError("Offer not found: %v", err)
		utils.NotFound(c, utils.ErrOfferNotFound)
		return
	}

	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	offer.Code = req.Code
	offer.Description = req.Description
	offer.Discount = req.Discount

	if err := utils.UpdateOffer(offer); err != nil {
		utils.LogError("Failed to update offer: %v", err)
		utils.InternalServerError(c, "Failed to update offer", err.Error())
		return
	}

	utils.LogInfo("Updated offer %d: %s", offer.ID, offer.Code)
	utils.Success(c, "Offer updated successfully", gin.H{
		"offer": offer,
	})
}

// DeleteOffer handles offer deletion
func DeleteOffer(c *gin.Context) {
	utils.LogInfo("DeleteOffer called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid offer ID: %v", err)
		utils.BadRequest(c, "Invalid offer ID", nil)
		return
	}

	if _, err := utils.GetOfferByID(uint(id)); err != nil {
		utils.LogError("Offer not found: %v", err)
		utils.NotFound(c, utils.ErrOfferNotFound)
		return
	}

	if err := utils.DeleteOffer(uint(id)); err != nil {
		utils.LogError("Failed to delete offer: %v", err)
		utils.InternalServerError(c, "Failed to delete offer", err.Error())
		return
	}

	utils.LogInfo("Deleted offer %d", id)
	utils.Success(c, "Offer deleted successfully", nil)
}
