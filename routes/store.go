package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/shoppee-dev/shoppee-api/controllers/cart"
	checkoutControllers "github.com/shoppee-dev/shoppee-api/controllers/checkout"
	productcontroller "github.com/shoppee-dev/shoppee-api/controllers/product"
	"github.com/shoppee-dev/shoppee-api/middleware"
)

// SetupStoreRoutes registers the browse endpoints. They work for
// anonymous callers too: the optional-auth middleware attaches the
// principal when a valid token is sent, and the handlers fall back to
// the zero-total guest cart otherwise.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB) {
	storeGroup := r.Group("/")
	storeGroup.Use(middleware.OptionalAuth)
	{
		storeGroup.GET("/", productcontroller.Home(db))
		storeGroup.GET("/category/", productcontroller.CategoryPage(db))
		storeGroup.GET("/detail/", productcontroller.Detail(db))
		storeGroup.POST("/search/", productcontroller.Search(db))
		storeGroup.GET("/cart/", cartControllers.GetCart(db))
		storeGroup.GET("/checkout/", checkoutControllers.Checkout(db))
		storeGroup.GET("/provinces/", productcontroller.Provinces(db))
	}
}
