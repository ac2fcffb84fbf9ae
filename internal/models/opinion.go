package models

import "time"

// ProductOpinion is a rated review left by a user.
type ProductOpinion struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Rating      int       `json:"rating" gorm:"not null"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:varchar(500)"`
	ProductID   string    `json:"productId" gorm:"type:varchar(36);index;not null"`
	UserID      int64     `json:"userId" gorm:"index;not null"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Question is asked by a user to the owner of a product.
type Question struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"type:varchar(255);not null"`
	ProductID string    `json:"productId" gorm:"type:varchar(36);index;not null"`
	UserID    int64     `json:"userId" gorm:"index;not null"`
	CreatedAt time.Time `json:"createdAt"`
}
