package models

import "time"

const uploadPublicPath = "/uploads"

type Product struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string     `gorm:"not null" json:"name"`
	Price         float64    `gorm:"not null;check:price >= 0" json:"price"`
	Discount      int        `gorm:"default:0" json:"discount"` // whole-number percent
	Digital       bool       `gorm:"default:false" json:"digital"`
	Detail        string     `gorm:"type:text" json:"detail"`
	Address       string     `json:"address"`
	Image         string     `json:"image"`
	Categories    []Category `gorm:"many2many:product_categories" json:"categories,omitempty"`
	SubCategoryID *uint      `json:"sub_category_id,omitempty"`
	SubCategory   *Category  `gorm:"foreignKey:SubCategoryID" json:"sub_category,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// EffectivePrice is the unit price after applying the discount
// percentage. The discount is not clamped; values outside [0,100]
// produce the plain arithmetic result.
func (p *Product) EffectivePrice() float64 {
	if p.Discount == 0 {
		return p.Price
	}
	return p.Price * float64(100-p.Discount) / 100
}

// ImageURL returns the public path of the product image, or an empty
// string when no image is attached.
func (p *Product) ImageURL() string {
	if p.Image == "" {
		return ""
	}
	return uploadPublicPath + "/" + p.Image
}
