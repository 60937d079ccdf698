package checkoutControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/shoppee-dev/shoppee-api/controllers/cart"
	"github.com/shoppee-dev/shoppee-api/models"
)

type ShippingAddressInput struct {
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state"`
	Mobile  string `json:"mobile"`
}

// GET /checkout/
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := cartControllers.Summary(db, c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// POST /checkout/
// Captures a shipping address snapshot against the caller's active
// order. Snapshots are append-only; formats are not validated.
func CreateShippingAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var input ShippingAddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := models.ActiveOrder(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cart"})
			return
		}

		shipping := models.ShippingAddress{
			CustomerID: &userID,
			OrderID:    &order.ID,
			Address:    input.Address,
			City:       input.City,
			State:      input.State,
			Mobile:     input.Mobile,
		}
		if err := db.Create(&shipping).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save shipping address"})
			return
		}

		c.JSON(http.StatusCreated, shipping)
	}
}
