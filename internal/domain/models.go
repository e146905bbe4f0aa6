package domain

import "time"

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product is an entry of the static catalog. Prices are whole pesos,
// no minor units. OldPrice of zero means no prior price is known.
type Product struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	Price          int               `json:"price"`
	OldPrice       int               `json:"oldPrice,omitempty"`
	Images         []string          `json:"images"`
	Tags           []string          `json:"tags,omitempty"`
	Stock          int               `json:"stock"`
	Specifications map[string]string `json:"specifications,omitempty"`
	CreatedAt      time.Time         `json:"createdAt,omitempty"`
}

// CartItem is one cart line: the product snapshot captured at add time
// plus the requested quantity. The snapshot freezes the price the item
// was added at, so later catalog changes do not move the cart total.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

func (i CartItem) Subtotal() int { return i.Price * i.Quantity }
