package models

// CartItem is one product line in a session's enquiry cart. Price is a
// snapshot taken when the item was added and is not re-fetched.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"category,omitempty"`
	Quantity int     `json:"quantity"`
}

// WishlistItem mirrors CartItem minus the quantity; the wishlist has set
// semantics, at most one entry per product id.
type WishlistItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"category,omitempty"`
}

// CartState is the persisted cart collection plus its derived totals.
// Totals are recomputed on every mutation, never set directly.
type CartState struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalValue float64    `json:"total_value"`
}

type WishlistState struct {
	Items []WishlistItem `json:"items"`
}
