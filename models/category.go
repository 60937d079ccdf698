package models

// Category is a node in the catalog tree. Top-level categories have
// IsSub=false; leaf subcategories carry IsSub=true and point at their
// parent through ParentID.
type Category struct {
	ID       uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string     `gorm:"not null" json:"name"`
	Slug     string     `gorm:"uniqueIndex;not null" json:"slug"`
	IsSub    bool       `gorm:"default:false" json:"is_sub"`
	Image    string     `json:"image"`
	ParentID *uint      `gorm:"index" json:"parent_id,omitempty"`
	Parent   *Category  `gorm:"foreignKey:ParentID" json:"-"`
	Children []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Products []Product  `gorm:"many2many:product_categories" json:"-"`
}

// ImageURL returns the public path of the category image, or an empty
// string when no image is attached.
func (c *Category) ImageURL() string {
	if c.Image == "" {
		return ""
	}
	return uploadPublicPath + "/" + c.Image
}
