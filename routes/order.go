package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/shoppee-dev/shoppee-api/controllers/order"
	"github.com/shoppee-dev/shoppee-api/middleware"
)

// SetupOrderRoutes registers the read-only completed-order history.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.RequireAuth)
	{
		orderGroup.GET("/", orderControllers.OrderHistory(db))
	}
}
