package cartControllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shoppee-dev/shoppee-api/models"
)

type CartItemSchema struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Discount  int     `json:"discount"`
	ImageURL  string  `json:"image_url"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
}

type CartSummarySchema struct {
	OrderID   uint             `json:"order_id,omitempty"`
	Items     []CartItemSchema `json:"items"`
	CartItems int              `json:"cart_items"`
	CartTotal float64          `json:"cart_total"`
}

// Summary resolves the caller's active order and flattens it into the
// payload every cart-bearing page embeds. Anonymous callers get the
// zero-item, zero-total placeholder and nothing is persisted for them.
func Summary(db *gorm.DB, c *gin.Context) (CartSummarySchema, error) {
	summary := CartSummarySchema{Items: []CartItemSchema{}}

	userIDVal, ok := c.Get("user_id")
	if !ok {
		return summary, nil
	}
	userID := userIDVal.(uint)

	order, err := models.ActiveOrderWithItems(db, userID)
	if err != nil {
		return summary, err
	}

	for i := range order.Items {
		item := &order.Items[i]
		schema := CartItemSchema{
			Quantity: item.Quantity,
			Total:    item.LineTotal(),
		}
		if item.Product != nil {
			schema.ProductID = item.Product.ID
			schema.Name = item.Product.Name
			schema.Price = item.Product.Price
			schema.Discount = item.Product.Discount
			schema.ImageURL = item.Product.ImageURL()
		}
		summary.Items = append(summary.Items, schema)
	}
	summary.OrderID = order.ID
	summary.CartItems = order.CartItemCount()
	summary.CartTotal = order.CartTotal()
	return summary, nil
}
