package transport

import (
	"net/http"
	"testing"

	"club-merch/internal/domain"
	"club-merch/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginHappyPath(t *testing.T) {
	env := newTestEnv(t)

	var resp LoginResponse
	rec := env.do(t, http.MethodPost, "/api/auth/login",
		LoginRequest{Username: "admin", Password: "admin123"}, nil, &resp)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, domain.RolePlatformStaff, resp.User.Role)

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie)
	assert.Equal(t, resp.Token, sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/login",
		LoginRequest{Username: "admin", Password: "wrong"}, nil, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid username or password")
}

func TestLoginUnknownUsername(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/login",
		LoginRequest{Username: "nobody", Password: "admin123"}, nil, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/login",
		LoginRequest{Username: "admin"}, nil, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionEndpoint(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginAs(t, "uif-admin", "uif123")

	var user domain.AuthUser
	rec := env.do(t, http.MethodGet, "/api/auth/session", nil, []*http.Cookie{cookie}, &user)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uif-admin", user.Username)
	assert.Equal(t, domain.RoleClubAdmin, user.Role)
	assert.Equal(t, "uif", user.ClubID)
}

func TestSessionRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/auth/session", nil, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginAs(t, "admin", "admin123")

	rec := env.do(t, http.MethodPost, "/api/auth/logout", nil, []*http.Cookie{cookie}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}
