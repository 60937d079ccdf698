package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/shoppee-dev/shoppee-api/controllers/cart"
	checkoutControllers "github.com/shoppee-dev/shoppee-api/controllers/checkout"
	"github.com/shoppee-dev/shoppee-api/middleware"
)

// SetupCartRoutes registers the write paths into the cart aggregate.
// Both require an authenticated principal.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/")
	cartGroup.Use(middleware.RequireAuth)
	{
		cartGroup.POST("/update_item/", cartControllers.UpdateItem(db))
		cartGroup.POST("/checkout/", checkoutControllers.CreateShippingAddress(db))
	}
}
