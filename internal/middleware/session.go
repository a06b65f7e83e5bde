package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const cartTokenKey contextKey = "cart_token"

// CartCookie identifies the shopper session that owns a cart. It is not an
// auth credential; it only names the storage slot the cart lives in.
const CartCookie = "cm_cart"

// CartSession ensures every request carries a cart token, minting one and
// setting the cookie when absent.
func CartSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if cookie, err := r.Cookie(CartCookie); err == nil && cookie.Value != "" {
			token = cookie.Value
		} else {
			token = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     CartCookie,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), cartTokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCartToken extracts the cart token from the request context.
func GetCartToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(cartTokenKey).(string)
	return token, ok
}
