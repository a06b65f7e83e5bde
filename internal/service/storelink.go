package service

import "strings"

// StoreLink builds the public storefront URL for a club. This is the
// payload handed to the QR encoder; the encoding itself happens in the
// transport layer.
func StoreLink(baseURL, slug string) string {
	return strings.TrimRight(baseURL, "/") + "/store/" + slug
}
