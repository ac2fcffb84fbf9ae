package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrSelfReferencingCategory is returned when a category names itself as its super category.
var ErrSelfReferencingCategory = errors.New("category cannot be its own super category")

// Category groups products. A category without a super category is a root category.
type Category struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"uniqueIndex;type:varchar(255);not null"`
	SuperCategoryID *int64    `json:"superCategoryId,omitempty" gorm:"index"`
	SuperCategory   *Category `json:"superCategory,omitempty" gorm:"foreignKey:SuperCategoryID"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SelfReferencing reports whether the category points at itself. Only the direct hop is checked.
func (c *Category) SelfReferencing() bool {
	return c.ID != 0 && c.SuperCategoryID != nil && *c.SuperCategoryID == c.ID
}

// BeforeSave keeps a self-referencing category out of the store.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	if c.SelfReferencing() {
		return ErrSelfReferencingCategory
	}
	return nil
}
