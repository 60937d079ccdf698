package models

// Province is inert reference data, seeded at startup.
type Province struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name" binding:"required"`
}
