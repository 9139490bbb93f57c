package entity

import (
	"time"
)

type MenuItem struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"index;not null"`
	Category        string    `json:"category"`
	Price           float64   `json:"price"`
	Description     string    `json:"description"`
	LongDescription string    `json:"long_description"`
	Image           string    `json:"image"`
	Ingredients     []string  `json:"ingredients" gorm:"serializer:json"`
	AddOns          []AddOn   `json:"add_ons" gorm:"serializer:json"`
	IsPopular       bool      `json:"is_popular"`
	IsAvailable     bool      `json:"is_available" gorm:"default:true"`
	Rating          float64   `json:"rating" gorm:"default:0"`
	ReviewsCount    int       `json:"reviews_count" gorm:"default:0"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`

	Reviews []Review `json:"-" gorm:"foreignKey:MenuItemID"`
}
