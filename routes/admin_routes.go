package routes

import (
	"github.com/furkancybercore/PyShop/controllers"
	"github.com/furkancybercore/PyShop/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		// Public admin routes
		admin.POST("/login", controllers.AdminLogin)
		admin.POST("/logout", controllers.AdminLogout)

		// Protected admin routes
		admin.Use(middleware.AdminAuthMiddleware())
		{
			// Product management
			admin.GET("/products", controllers.GetProducts)
			admin.GET("/products/:id", controllers.GetProduct)
			admin.POST("/products", controllers.CreateProduct)
			admin.PUT("/products/:id", controllers.UpdateProduct)
			admin.DELETE("/products/:id", controllers.DeleteProduct)

			// Product exports
			admin.GET("/reports/products/excel", controllers.DownloadProductsExcel)
			admin.GET("/reports/products/pdf", controllers.DownloadProductsPDF)

			// Offer management
			admin.GET("/offers", controllers.GetOffers)
			admin.GET("/offers/:id", controllers.GetOffer)
			admin.POST("/offers", controllers.CreateOffer)
			admin.PUT("/offers/:id", controllers.UpdateOffer)
			admin.DELETE("/offers/:id", controllers.DeleteOffer)
		}
	}
}
