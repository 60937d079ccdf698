package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shoppee-dev/shoppee-api/models"
)

// OrderHistory returns the caller's completed orders, newest first.
// Completed orders are immutable history; there is no write path here.
// GET /orders/
func OrderHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var orders []models.Order
		if err := db.Preload("Items.Product").
			Where("customer_id = ? AND complete = ?", userID, true).
			Order("date_order DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}
