package product

import "time"

// Product is a sellable catalog item. Immutable from the client's
// perspective; the list is refreshed wholesale on demand.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Unit          string    `json:"unit"`
	Image         string    `json:"image"`
	Category      string    `json:"category"`
	Vendor        string    `json:"vendor"`
	Description   string    `json:"description"`
	StockQuantity int       `json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
}
