package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartSessionMintsToken(t *testing.T) {
	var seen string
	handler := CartSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := GetCartToken(r.Context())
		require.True(t, ok)
		seen = token
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// The minted token is a UUID and is set as a cookie.
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CartCookie, cookies[0].Name)
	assert.Equal(t, seen, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestCartSessionReusesExistingToken(t *testing.T) {
	var seen string
	handler := CartSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetCartToken(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: CartCookie, Value: "existing-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "existing-token", seen)
	assert.Empty(t, rec.Result().Cookies())
}
