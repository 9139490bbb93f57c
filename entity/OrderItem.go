package entity

// OrderItem is a denormalized snapshot of a menu item at purchase
// time. MenuItemID is informational; name/price are copied so later
// catalog edits don't rewrite order history.
type OrderItem struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	OrderID         uint             `json:"-" gorm:"index;not null"`
	MenuItemID      uint             `json:"menu_item_id"`
	Name            string           `json:"name"`
	Quantity        int              `json:"quantity"`
	Price           float64          `json:"price"`
	SelectedOptions []SelectedOption `json:"selected_options" gorm:"serializer:json"`
}
