package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/shoppee-dev/shoppee-api/controllers/cart"
	"github.com/shoppee-dev/shoppee-api/models"
)

// CategoryPage lists the top-level categories plus the products joined
// to the selected category slug.
// GET /category/?category=<slug>
func CategoryPage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		activeCategory := c.Query("category")

		var categories []models.Category
		if err := db.Preload("Children").
			Where("is_sub = ?", false).
			Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		var products []models.Product
		if err := db.
			Joins("JOIN product_categories pc ON pc.product_id = products.id").
			Joins("JOIN categories ON categories.id = pc.category_id").
			Where("categories.slug = ?", activeCategory).
			Preload("Categories").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		cart, err := cartControllers.Summary(db, c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"categories":      categorySchemas(categories),
			"active_category": activeCategory,
			"products":        products,
			"cart":            cart,
		})
	}
}

// Provinces returns the reference list of provinces.
// GET /provinces/
func Provinces(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var provinces []models.Province
		if err := db.Order("name").Find(&provinces).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch provinces"})
			return
		}
		c.JSON(http.StatusOK, provinces)
	}
}
