package domain

// ProductVariant is a selectable color variant of a product.
type ProductVariant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Product represents an item in the merchandise catalog. Catalog data is
// immutable reference data; products are never created or modified at runtime.
type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Brand       string           `json:"brand"`
	Category    string           `json:"category"`
	Price       int              `json:"price"`
	Description string           `json:"description"`
	Sizes       []string         `json:"sizes"`
	Variants    []ProductVariant `json:"variants"`
	Image       string           `json:"image"`
}

// Category is a storefront category tab.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// CategoryAll is the synthetic category tab that matches the whole catalog.
const CategoryAll = "all"
