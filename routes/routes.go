package routes

import (
	"github.com/furkancybercore/PyShop/controllers"
	"github.com/furkancybercore/PyShop/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.Default()

	// Setup session middleware with a secure key
	store := cookie.NewStore([]byte("pyshop-session-key"))
	store.Options(sessions.Options{
		MaxAge:   utils.SessionMaxAge,
		Path:     "/",
		Secure:   false, // Set to true in production with HTTPS
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("pyshop", store))

	// Application middleware, registered ahead of the routes
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	// Templates for the public pages
	router.LoadHTMLGlob("templates/*")

	// Public routes
	router.GET("/", controllers.Index)
	router.GET("/new", controllers.NewProducts)

	// API version group
	api := router.Group("/" + utils.APIVersion)
	{
		initAdminRoutes(api)
	}

	return router
}
