package catalog

import "time"

// Product is the catalog entry as served to the storefront. Name is
// exposed as "title".
type Product struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       *string   `json:"image"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"-"`
}

type NewProduct struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Image       *string
	Rating      float64
}
