package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Order is one customer purchase. The single order with Complete=false
// is the customer's active cart; completed orders are immutable
// history. The partial unique index guarantees at most one active
// order per customer.
type Order struct {
	ID            uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID    *uint       `gorm:"index:idx_active_customer_order,unique,where:complete = false" json:"customer_id"`
	Customer      *User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:CustomerID" json:"-"`
	DateOrder     time.Time   `gorm:"autoCreateTime" json:"date_order"`
	Complete      bool        `gorm:"default:false" json:"complete"`
	TransactionID string      `json:"transaction_id"`
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// OrderItem is a product-quantity line within an order. Deleting the
// referenced product or order nulls the foreign key instead of
// cascading, so lines survive as history. The unique line index keeps
// one row per (order, product) pairing.
type OrderItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   *uint     `gorm:"index:idx_order_product_line,unique" json:"order_id"`
	Order     *Order    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:OrderID" json:"-"`
	ProductID *uint     `gorm:"index:idx_order_product_line,unique" json:"product_id"`
	Product   *Product  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int       `json:"quantity"`
	DateAdded time.Time `gorm:"autoCreateTime" json:"date_added"`
}

// LineTotal is the discounted price of the line. Orphaned lines with a
// nulled product contribute nothing.
func (item *OrderItem) LineTotal() float64 {
	if item.Product == nil {
		return 0
	}
	return item.Product.Price * float64(item.Quantity) * float64(100-item.Product.Discount) / 100
}

// CartItemCount sums the quantities of the loaded order items.
func (order *Order) CartItemCount() int {
	total := 0
	for _, item := range order.Items {
		total += item.Quantity
	}
	return total
}

// CartTotal sums the discounted line totals of the loaded order items.
// Recomputed on every read so totals never drift from the lines.
func (order *Order) CartTotal() float64 {
	total := 0.0
	for i := range order.Items {
		total += order.Items[i].LineTotal()
	}
	return total
}

// NewTransactionRef generates a unique order reference.
// Example: 20250908130500-<uuid4>
func NewTransactionRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// ActiveOrder returns the customer's incomplete order, creating one if
// none exists. A concurrent create racing us trips the unique index;
// the loser re-reads the winner's row.
func ActiveOrder(db *gorm.DB, customerID uint) (Order, error) {
	var order Order
	err := db.Where("customer_id = ? AND complete = ?", customerID, false).First(&order).Error
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Order{}, err
	}

	order = Order{CustomerID: &customerID, TransactionID: NewTransactionRef()}
	if createErr := db.Create(&order).Error; createErr != nil {
		var pgErr *pgconn.PgError
		if errors.Is(createErr, gorm.ErrDuplicatedKey) ||
			(errors.As(createErr, &pgErr) && pgErr.Code == "23505") {
			err = db.Where("customer_id = ? AND complete = ?", customerID, false).First(&order).Error
			return order, err
		}
		return Order{}, createErr
	}
	return order, nil
}

// ActiveOrderWithItems loads the active order with its lines and their
// products, ready for totals.
func ActiveOrderWithItems(db *gorm.DB, customerID uint) (Order, error) {
	order, err := ActiveOrder(db, customerID)
	if err != nil {
		return Order{}, err
	}
	if err := db.Preload("Items.Product").First(&order, order.ID).Error; err != nil {
		return Order{}, err
	}
	return order, nil
}

// AdjustItemQuantity applies a quantity delta to the (order, product)
// line, creating it on first touch and deleting it when the result
// drops to zero or below. The increment runs in-place in SQL, so
// concurrent adjustments never lose an update; the unique line index
// resolves racing first-touch creates the same way ActiveOrder does.
// The line never persists with quantity <= 0.
func AdjustItemQuantity(db *gorm.DB, orderID, productID uint, delta int) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&OrderItem{}).
			Where("order_id = ? AND product_id = ?", orderID, productID).
			Update("quantity", gorm.Expr("quantity + ?", delta))
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			if delta <= 0 {
				// Never persisted; ending absent is already the goal.
				return nil
			}
			item := OrderItem{OrderID: &orderID, ProductID: &productID, Quantity: delta}
			if createErr := tx.Create(&item).Error; createErr != nil {
				var pgErr *pgconn.PgError
				if errors.Is(createErr, gorm.ErrDuplicatedKey) ||
					(errors.As(createErr, &pgErr) && pgErr.Code == "23505") {
					// Another request created the line first; fold the
					// delta into it.
					return tx.Model(&OrderItem{}).
						Where("order_id = ? AND product_id = ?", orderID, productID).
						Update("quantity", gorm.Expr("quantity + ?", delta)).Error
				}
				return createErr
			}
			return nil
		}

		return tx.Where("order_id = ? AND product_id = ? AND quantity <= 0", orderID, productID).
			Delete(&OrderItem{}).Error
	})
}
