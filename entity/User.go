package entity

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	Name           string    `json:"name"`
	HashedPassword string    `json:"-" gorm:"not null"`
	Role           string    `json:"role" gorm:"not null;default:user"`
	JoinDate       time.Time `json:"join_date"`

	// Relations — preload only when needed
	Orders  []Order  `json:"-" gorm:"foreignKey:UserID"`
	Reviews []Review `json:"-" gorm:"foreignKey:UserID"`
}
