package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"club-merch/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubValidator struct {
	user  *domain.AuthUser
	token string
}

func (v *stubValidator) ValidateToken(tokenString string) (*domain.AuthUser, error) {
	if tokenString == v.token {
		return v.user, nil
	}
	return nil, errors.New("invalid token")
}

func staffValidator() *stubValidator {
	return &stubValidator{
		user:  &domain.AuthUser{Username: "admin", Role: domain.RolePlatformStaff},
		token: "valid-token",
	}
}

func authProbe(t *testing.T) (http.Handler, *domain.AuthUser) {
	t.Helper()

	captured := &domain.AuthUser{}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		require.True(t, ok)
		*captured = *user
		w.WriteHeader(http.StatusOK)
	})
	return AuthMiddleware(staffValidator(), zap.NewNop())(handler), captured
}

func TestAuthMiddlewareCookieToken(t *testing.T) {
	handler, captured := authProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "valid-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", captured.Username)
}

func TestAuthMiddlewareBearerToken(t *testing.T) {
	handler, captured := authProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.RolePlatformStaff, captured.Role)
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	handler, _ := authProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	handler, _ := authProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "forged"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	chained := AuthMiddleware(staffValidator(), zap.NewNop())(
		RequireRole([]domain.Role{domain.RoleClubAdmin}, zap.NewNop())(next))

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "valid-token"})
	rec := httptest.NewRecorder()
	chained.ServeHTTP(rec, req)

	// Platform staff is not a club admin.
	assert.Equal(t, http.StatusForbidden, rec.Code)

	allowed := AuthMiddleware(staffValidator(), zap.NewNop())(
		RequireRole([]domain.Role{domain.RolePlatformStaff, domain.RoleClubAdmin}, zap.NewNop())(next))
	rec = httptest.NewRecorder()
	allowed.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestScopeClub(t *testing.T) {
	staff := &domain.AuthUser{Username: "admin", Role: domain.RolePlatformStaff}
	clubAdmin := &domain.AuthUser{Username: "uif-admin", Role: domain.RoleClubAdmin, ClubID: "uif"}

	// Staff sees whatever was asked for, including all clubs.
	club, ok := ScopeClub(staff, "")
	assert.True(t, ok)
	assert.Empty(t, club)

	club, ok = ScopeClub(staff, "uif")
	assert.True(t, ok)
	assert.Equal(t, "uif", club)

	// A club admin is pinned to their own club.
	club, ok = ScopeClub(clubAdmin, "")
	assert.True(t, ok)
	assert.Equal(t, "uif", club)

	club, ok = ScopeClub(clubAdmin, "uif")
	assert.True(t, ok)
	assert.Equal(t, "uif", club)

	_, ok = ScopeClub(clubAdmin, "other-club")
	assert.False(t, ok)

	_, ok = ScopeClub(&domain.AuthUser{Role: "visitor"}, "uif")
	assert.False(t, ok)
}
