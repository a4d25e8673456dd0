package models

import "time"

// Category groups catalog products under a unique slug.
type Category struct {
	ID           int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"column:name;not null" json:"name"`
	Slug         string    `gorm:"column:slug;not null;uniqueIndex:categories_slug_key" json:"slug"`
	Description  string    `gorm:"column:description" json:"description"`
	Icon         string    `gorm:"column:icon" json:"icon"`
	Gradient     string    `gorm:"column:gradient" json:"gradient"`
	ProductCount int       `gorm:"column:product_count;not null;default:0" json:"productCount"`
	Featured     bool      `gorm:"column:featured;not null;default:false" json:"featured"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
