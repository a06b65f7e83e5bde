package domain

// Club is a tenant of the white-label storefront. A club's store is the
// catalog filtered down to ActiveProductIDs.
type Club struct {
	ID               string   `json:"id"`
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	PrimaryColor     string   `json:"primaryColor"`
	SecondaryColor   string   `json:"secondaryColor"`
	Logo             string   `json:"logo"`
	BannerImage      string   `json:"bannerImage"`
	Description      string   `json:"description"`
	ActiveProductIDs []string `json:"activeProductIds"`
}

// Sells reports whether the product is part of the club's store.
func (c *Club) Sells(productID string) bool {
	for _, id := range c.ActiveProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}
