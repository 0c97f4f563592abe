package models

import "time"

const (
	DefaultCategoryColor = "#6366f1"
	DefaultCategoryIcon  = "folder"
)

// Category name is unique per owner, not globally; the composite unique
// index is the authoritative source for duplicate-name conflicts.
// Deleting a category orphans its records (category_id set NULL), it never
// cascades.
type Category struct {
	ID          uint   `gorm:"primaryKey;autoIncrement:true"`
	Name        string `gorm:"type:varchar(50);not null;uniqueIndex:idx_categories_owner_name"`
	Description string `gorm:"type:varchar(200)"`
	Color       string `gorm:"type:varchar(20);not null;default:'#6366f1'"`
	Icon        string `gorm:"type:varchar(50);not null;default:'folder'"`
	OwnerID     uint   `gorm:"not null;index;uniqueIndex:idx_categories_owner_name"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Category) TableName() string {
	return "categories"
}
