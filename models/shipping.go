package models

import "time"

// ShippingAddress is an append-only snapshot captured at checkout.
// No format validation is applied.
type ShippingAddress struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID *uint     `json:"customer_id"`
	Customer   *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:CustomerID" json:"-"`
	OrderID    *uint     `json:"order_id"`
	Order      *Order    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:OrderID" json:"-"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	Mobile     string    `gorm:"size:10" json:"mobile"`
	DateAdded  time.Time `gorm:"autoCreateTime" json:"date_added"`
}
