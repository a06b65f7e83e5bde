package domain

// CartItem is a single cart line. A line is identified by the
// (ProductID, Size, Variant) triple; the cart never holds two lines with the
// same triple. Name, price and image are snapshotted when the item is added
// and are not re-read from the catalog afterwards.
type CartItem struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	Size         string `json:"size"`
	Variant      string `json:"variant"`
	VariantColor string `json:"variantColor"`
	Quantity     int    `json:"quantity"`
	Price        int    `json:"price"`
	Image        string `json:"image"`
}

// Matches reports whether the line is identified by the given key triple.
func (i CartItem) Matches(productID, size, variant string) bool {
	return i.ProductID == productID && i.Size == size && i.Variant == variant
}

// Cart holds the current line items of one shopper session.
type Cart struct {
	Items []CartItem `json:"items"`
}

// TotalItems returns the summed quantity across all lines. Recomputed on
// every call; the cart carries no cached totals.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the cart subtotal in whole kronor.
func (c *Cart) TotalPrice() int {
	total := 0
	for _, item := range c.Items {
		total += item.Price * item.Quantity
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Find returns the index of the line matching the key triple, or -1.
func (c *Cart) Find(productID, size, variant string) int {
	for idx, item := range c.Items {
		if item.Matches(productID, size, variant) {
			return idx
		}
	}
	return -1
}
