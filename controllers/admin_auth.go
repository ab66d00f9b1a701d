package controllers

import (
	"os"
	"strings"
	"time"

	"github.com/furkancybercore/PyShop/config"
	"github.com/furkancybercore/PyShop/models"
	"github.com/furkancybercore/PyShop/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// AdminLoginRequest represents the admin login request
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin handles admin authentication
func AdminLogin(c *gin.Context) {
	utils.LogInfo("AdminLogin called")
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	utils.LogDebug("Processing login request for email: %s", req.Email)

	admin, err := utils.GetAdminByEmail(req.Email)
	if err != nil {
		utils.LogError("Admin not found for email: %s: %v", req.Email, err)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}

	if !admin.IsActive {
		utils.LogError("Inactive admin account attempted login: %s", admin.Email)
		utils.Forbidden(c, utils.ErrAdminInactive)
		return
	}

	if !utils.CheckPassword(req.Password, admin.Password) {
		utils.LogError("Invalid password for admin: %s", admin.Email)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}
	utils.LogDebug("Password verified for admin: %s", admin.Email)

	admin.LastLogin = time.Now()
	if err := config.DB.Save(admin).Error; err != nil {
		utils.LogError("Failed to update last login for admin: %s: %v", admin.Email, err)
	}

	tokenString, err := utils.GenerateAdminToken(admin)
	if err != nil {
		utils.LogError("Failed to sign JWT token for admin: %s: %v", admin.Email, err)
		utils.InternalServerError(c, "Failed to generate token", err.Error())
		return
	}

	if err := utils.SetAdminSession(c, admin.ID); err != nil {
		utils.LogError("Failed to save admin session: %v", err)
	}

	utils.LogInfo("Admin login successful: %s", admin.Email)
	utils.Success(c, "Login successful", gin.H{
		"token": tokenString,
		"admin": gin.H{
			"id":        admin.ID,
			"email":     admin.Email,
			"firstName": admin.FirstName,
			"lastName":  admin.LastName,
		},
	})
}

// AdminLogout handles admin logout
func AdminLogout(c *gin.Context) {
	utils.LogInfo("AdminLogout called")

	if err := utils.ClearAdminSession(c); err != nil {
		utils.LogError("Failed to clear admin session: %v", err)
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		utils.LogError("Missing Authorization header on logout")
		utils.Success(c, "Logged out successfully", nil)
		return
	}
	tokenString := authHeader
	if strings.HasPrefix(authHeader, "Bearer ") {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	}

	// Parse the token to get expiry
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		utils.LogError("Failed to parse token on logout: %v", err)
		utils.Success(c, "Logged out successfully", nil)
		return
	}

	var expiresAt time.Time
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			expiresAt = time.Unix(int64(exp), 0)
		} else {
			expiresAt = time.Now().Add(24 * time.Hour) // fallback
		}
	} else {
		expiresAt = time.Now().Add(24 * time.Hour) // fallback
	}

	blacklisted := models.BlacklistedToken{
		Token:     tokenString,
		ExpiresAt: expiresAt,
	}
	if err := config.DB.Create(&blacklisted).Error; err != nil {
		utils.LogError("Failed to blacklist token on logout: %v", err)
	}

	utils.LogDebug("Client-side logout processed and token blacklisted")
	utils.Success(c, "Logged out successfully", nil)
}

// CreateSampleAdmin creates a sample admin user from environment settings
func CreateSampleAdmin() error {
	utils.LogInfo("CreateSampleAdmin called")
	hashedPassword, err := utils.HashPassword(os.Getenv("ADMIN_PASSWORD"))
	if err != nil {
		utils.LogError("Failed to hash admin password: %v", err)
		return err
	}

	admin := models.Admin{
		Email:     os.Getenv("ADMIN_EMAIL"),
		Password:  hashedPassword,
		FirstName: os.Getenv("ADMIN_FIRST_NAME"),
		LastName:  os.Getenv("ADMIN_LAST_NAME"),
		IsActive:  true,
	}

	err = config.DB.FirstOrCreate(&admin, models.Admin{Email: admin.Email}).Error
	if err != nil {
		utils.LogError("Failed to create sample admin: %v", err)
		return err
	}
	utils.LogInfo("Successfully created/updated sample admin: %s", admin.Email)
	return nil
}
