package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shoppee-dev/shoppee-api/models"
)

type UpdateItemInput struct {
	ProductID uint   `json:"productId" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

// GET /cart/
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := Summary(db, c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// POST /update_item/
// Applies one add/remove step to the (active order, product) line. An
// unknown action leaves the quantity untouched; a line reaching zero
// quantity is deleted rather than stored.
func UpdateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusNotFound
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		order, err := models.ActiveOrder(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cart"})
			return
		}

		delta := 0
		switch input.Action {
		case "add":
			delta = 1
		case "remove":
			delta = -1
		}

		if err := models.AdjustItemQuantity(db, order.ID, product.ID, delta); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, "added")
	}
}
