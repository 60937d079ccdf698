package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/shoppee-dev/shoppee-api/controllers/cart"
	"github.com/shoppee-dev/shoppee-api/models"
)

// Home returns the storefront landing payload: every product, the
// top-level categories and the caller's cart summary.
// GET /
func Home(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Categories").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
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

// Search runs a plain substring match on product names. No ranking,
// no pagination.
// POST /search/
func Search(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		searched := c.PostForm("searched")

		var keys []models.Product
		if err := db.Preload("Categories").
			Where("name LIKE ?", "%"+searched+"%").
			Find(&keys).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
			return
		}

		cart, err := cartControllers.Summary(db, c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"searched": searched,
			"keys":     keys,
			"cart":     cart,
		})
	}
}
