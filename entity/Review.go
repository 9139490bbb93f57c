package entity

type Review struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	UserID     uint   `json:"user_id"`
	MenuItemID uint   `json:"menu_item_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}
