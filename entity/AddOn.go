package entity

type AddOnType string

const (
	AddOnToggle   AddOnType = "toggle"
	AddOnQuantity AddOnType = "quantity"
)

// AddOn is a configurable modifier on a menu item. Stored as a JSON
// column on MenuItem, never as a live relation.
type AddOn struct {
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Type        AddOnType `json:"type"`
	MaxQuantity *int      `json:"maxQuantity,omitempty"`
}

// SelectedOption is the snapshot of an add-on chosen at order time.
// Catalog edits after the fact must not alter it.
type SelectedOption struct {
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Type     AddOnType `json:"type,omitempty"`
	Quantity int       `json:"quantity,omitempty"`
}
