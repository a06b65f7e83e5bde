package transport

import (
	"bytes"
	"image/png"
	"net/http"
	"testing"

	"club-merch/internal/domain"
	"club-merch/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	for _, target := range []string{
		"/api/dashboard/summary",
		"/api/dashboard/orders",
		"/api/dashboard/store-qr",
	} {
		rec := env.do(t, http.MethodGet, target, nil, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestSummaryDefaultsToMonth(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginAs(t, "admin", "admin123")

	var summary service.Summary
	rec := env.do(t, http.MethodGet, "/api/dashboard/summary", nil, []*http.Cookie{cookie}, &summary)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PeriodMonth, summary.Period)
	assert.Equal(t, 12, summary.OrderCount)
}

func TestSummaryWeekWindow(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginAs(t, "admin", "admin123")

	var summary service.Summary
	rec := env.do(t, http.MethodGet, "/api/dashboard/summary?period=week", nil, []*http.Cookie{cookie}, &summary)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 6, summary.OrderCount)
	assert.Equal(t, 6515, summary.TotalRevenue)
	assert.NotEmpty(t, summary.RevenueByCategory)
	assert.NotEmpty(t, summary.TopProducts)
}

func TestSummaryRejectsInvalidPeriod(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginAs(t, "admin", "admin123")

	rec := env.do(t, http.MethodGet, "/api/dashboard/summary?period=decade", nil, []*http.Cookie{cookie}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummaryClubAdminIsPinned(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginAs(t, "uif-admin", "uif123")

	// Their own club works, with or without asking.
	var summary service.Summary
	rec := env.do(t, http.MethodGet, "/api/dashboard/summary?period=quarter", nil, []*http.Cookie{cookie}, &summary)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 15, summary.OrderCount)

	// Another club's data is off limits.
	rec = env.do(t, http.MethodGet, "/api/dashboard/summary?club=other-club", nil, []*http.Cookie{cookie}, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestOrdersEndpoint(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginAs(t, "admin", "admin123")

	var orders []*domain.Order
	rec := env.do(t, http.MethodGet, "/api/dashboard/orders?period=week", nil, []*http.Cookie{cookie}, &orders)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, orders, 6)
	assert.Equal(t, "ORD-2024-015", orders[0].ID)
	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i-1].CreatedAt.Before(orders[i].CreatedAt))
	}
}

func TestStoreQREndpoint(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginAs(t, "uif-admin", "uif123")

	rec := env.do(t, http.MethodGet, "/api/dashboard/store-qr", nil, []*http.Cookie{cookie}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, 160, bounds.Dx())
	assert.Equal(t, 160, bounds.Dy())
}

func TestStoreQRCustomSize(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginAs(t, "uif-admin", "uif123")

	rec := env.do(t, http.MethodGet, "/api/dashboard/store-qr?size=320", nil, []*http.Cookie{cookie}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())

	rec = env.do(t, http.MethodGet, "/api/dashboard/store-qr?size=9999", nil, []*http.Cookie{cookie}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/dashboard/store-qr?size=abc", nil, []*http.Cookie{cookie}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoreQRStaffMustNameClub(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginAs(t, "admin", "admin123")

	// Platform staff has no implicit club.
	rec := env.do(t, http.MethodGet, "/api/dashboard/store-qr", nil, []*http.Cookie{cookie}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/dashboard/store-qr?club=uif", nil, []*http.Cookie{cookie}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/dashboard/store-qr?club=no-such-club", nil, []*http.Cookie{cookie}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
