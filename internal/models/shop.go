package models

// Product represents an item in the store catalog.
// Products are created by admins and readable by anyone; they are not
// owned by a user.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// CartItem represents a quantity of one product in one user's cart.
type CartItem struct {
	Owner     string `json:"owner"`
	ProductID int    `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
