package controllers

import (
	"github.com/furkancybercore/PyShop/middleware"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// setupTestRouter wires the application routes onto a fresh engine. The
// template glob is relative to this package directory.
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	store := cookie.NewStore([]byte("test-session-key"))
	router.Use(sessions.Sessions("pyshop", store))
	router.LoadHTMLGlob("../templates/*")

	router.GET("/", Index)
	router.GET("/new", NewProducts)

	api := router.Group("/v1")
	admin := api.Group("/admin")
	admin.POST("/login", AdminLogin)
	admin.POST("/logout", AdminLogout)
	admin.Use(middleware.AdminAuthMiddleware())
	{
		admin.GET("/products", GetProducts)
		admin.GET("/products/:id", GetProduct)
		admin.POST("/products", CreateProduct)
		admin.PUT("/products/:id", UpdateProduct)
		admin.DELETE("/products/:id", DeleteProduct)

		admin.GET("/offers", GetOffers)
		admin.GET("/offers/:id", GetOffer)
		admin.POST("/offers", CreateOffer)
		admin.PUT("/offers/:id", UpdateOffer)
		admin.DELETE("/offers/:id", DeleteOffer)

		admin.GET("/reports/products/excel", DownloadProductsExcel)
		admin.GET("/reports/products/pdf", DownloadProductsPDF)
	}

	return router
}
