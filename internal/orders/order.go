package orders

import "time"

// Item is one purchased line as listed on the orders page.
type Item struct {
	UserID      int64     `json:"user_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

type CartItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Checkout is the shipping form plus the cart submitted at checkout.
type Checkout struct {
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Email      string     `json:"email"`
	Address    string     `json:"address"`
	City       string     `json:"city"`
	PostalCode string     `json:"postalCode"`
	CartItems  []CartItem `json:"cartItems"`
}
