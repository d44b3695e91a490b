package router

import (
	"dressly/internal/adapter/api/handler"
	"dressly/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupWishlistRouter(e *echo.Echo, wishlistHandler *handler.WishlistHandler, authMiddleware *middleware.AuthMiddleware) {
	// All wishlist endpoints require authentication
	wishlistGroup := e.Group("/wishlist")
	wishlistGroup.Use(authMiddleware.Authenticate)

	wishlistGroup.POST("", wishlistHandler.Add)
	wishlistGroup.GET("", wishlistHandler.List)
	wishlistGroup.DELETE("/:code", wishlistHandler.Remove)
}
