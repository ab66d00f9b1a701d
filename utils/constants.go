package utils

// Application constants
const (
	// Application name
	AppName = "PyShop"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// JWT token expiration (24 hours)
	JWTExpiration = "24h"

	// Session lifetime in seconds (1 day)
	SessionMaxAge = 60 * 60 * 24
)

// Error messages
const (
	// Authentication errors
	ErrInvalidCredentials = "Invalid email or password"
	ErrInvalidToken       = "Invalid or expired token"
	ErrUnauthorized       = "Unauthorized access"
	ErrAdminInactive      = "Admin account is inactive"

	// Record errors
	ErrProductNotFound = "Product not found"
	ErrOfferNotFound   = "Offer not found"
)
