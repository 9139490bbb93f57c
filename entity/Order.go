package entity

import (
	"time"
)

type Order struct {
	ID             uint        `json:"id" gorm:"primaryKey"`
	UserID         uint        `json:"user_id" gorm:"index;not null"`
	User           *User       `json:"-" gorm:"foreignKey:UserID"`
	Date           time.Time   `json:"date"`
	Status         OrderStatus `json:"status" gorm:"type:varchar(20);default:Pending"`
	Subtotal       float64     `json:"subtotal"`
	DiscountAmount float64     `json:"discount_amount"`
	Total          float64     `json:"total"`

	// Items are written once, together with the order header.
	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}
