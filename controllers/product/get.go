package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/shoppee-dev/shoppee-api/controllers/cart"
	"github.com/shoppee-dev/shoppee-api/models"
)

// Detail returns the product matching the id query param. An unknown
// or missing id yields an empty product list, not an error.
// GET /detail/?id=<id>
func Detail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product

		idParam := c.Query("id")
		if id, err := strconv.Atoi(idParam); err == nil {
			if err := db.Preload("Categories").
				Where("id = ?", id).
				Find(&products).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
				return
			}
		}
		if products == nil {
			products = []models.Product{}
		}

		var categories []models.Category
		if err := db.Where("is_sub = ?", false).Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		cart, err := cartControllers.Summary(db, c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products":   products,
			"categories": categorySchemas(categories),
			"cart":       cart,
		})
	}
}
