package transport

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"club-merch/internal/middleware"
	"club-merch/internal/repository"
	"club-merch/internal/service"
	"club-merch/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testNow pins the analytics clock just after the newest seed order.
var testNow = time.Date(2024, time.December, 10, 12, 0, 0, 0, time.UTC)

// testEnv wires the full route surface over in-memory storage, the demo
// dataset and an instant order submitter.
type testEnv struct {
	router chi.Router
	carts  service.CartService
	auth   service.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := zap.NewNop()
	store := storage.NewMemoryStore()

	productRepo := repository.NewProductRepository(repository.SeedProducts(), repository.SeedCategories())
	clubRepo := repository.NewClubRepository(repository.SeedClubs())
	orderRepo := repository.NewOrderRepository(repository.SeedOrders())
	credentialRepo, err := repository.NewCredentialRepository(repository.SeedCredentials())
	require.NoError(t, err)

	carts := service.NewCartService(store, logger)
	checkout := service.NewCheckoutService(store, carts, service.NewSimulatedSubmitter(0), 49, logger)
	auth := service.NewAuthService(credentialRepo, "test-secret", time.Hour, 0)
	analytics := service.NewAnalyticsService(orderRepo, productRepo)

	router := chi.NewRouter()
	router.Use(middleware.CartSession)

	authMiddleware := middleware.AuthMiddleware(auth, logger)
	NewAuthHandler(auth, logger).RegisterRoutes(router, authMiddleware, nil)
	NewCatalogHandler(productRepo, clubRepo, logger).RegisterRoutes(router)
	NewCartHandler(carts, productRepo, logger).RegisterRoutes(router)
	NewCheckoutHandler(checkout, logger).RegisterRoutes(router)
	NewDashboardHandler(analytics, clubRepo, "http://localhost:3000", func() time.Time { return testNow }, logger).
		RegisterRoutes(router, authMiddleware)

	return &testEnv{router: router, carts: carts, auth: auth}
}

// do performs a request with a fixed cart session cookie and decodes the
// JSON response into out when it is non-nil.
func (e *testEnv) do(t *testing.T, method, target string, body interface{}, cookies []*http.Cookie, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	if out != nil && rec.Code < http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func cartCookie(token string) []*http.Cookie {
	return []*http.Cookie{{Name: middleware.CartCookie, Value: token}}
}

// loginAs performs a real login and returns the session cookie.
func (e *testEnv) loginAs(t *testing.T, username, password string) *http.Cookie {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/auth/login",
		LoginRequest{Username: username, Password: password}, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	t.Fatal("login response did not set a session cookie")
	return nil
}
