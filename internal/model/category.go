package model

// Category is a pricing category for tickets (e.g. "Standard", "Premium").
// Tickets reference exactly one category.
type Category struct {
	ID   uint64 `json:"id"`   // categories.id
	Name string `json:"name"` // categories.name
}
