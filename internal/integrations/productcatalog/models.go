package productcatalog

// Product is a sellable catalog item a service links to
type Product struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	ImageURL *string   `json:"imageUrl,omitempty"`
	Variants []Variant `json:"variants"`
}

// Variant is one purchasable variation of a product
type Variant struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    string  `json:"price"`
	ImageURL *string `json:"imageUrl,omitempty"`
}
