package middleware

import (
	"context"
	"net/http"
	"strings"

	"club-merch/internal/domain"

	"go.uber.org/zap"
)

type contextKey string

const userKey contextKey = "auth_user"

// SessionCookie is the cookie carrying the signed session token. A Bearer
// Authorization header is accepted as well for non-browser clients.
const SessionCookie = "cm_session"

// TokenValidator turns a session token back into the user it was issued
// for. Implemented by the auth service.
type TokenValidator interface {
	ValidateToken(tokenString string) (*domain.AuthUser, error)
}

// AuthMiddleware resolves the session token and rejects requests without a
// valid one. Corrupt or expired tokens are treated the same as no token:
// the caller is simply not logged in.
func AuthMiddleware(validator TokenValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := sessionToken(r)
			if tokenString == "" {
				logger.Debug("Missing session token")
				respondWithError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			user, err := validator.ValidateToken(tokenString)
			if err != nil {
				logger.Debug("Session token rejected", zap.Error(err))
				respondWithError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			logger.Debug("User authenticated",
				zap.String("username", user.Username),
				zap.String("role", string(user.Role)),
			)

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser extracts the authenticated user from the request context.
func GetUser(ctx context.Context) (*domain.AuthUser, bool) {
	user, ok := ctx.Value(userKey).(*domain.AuthUser)
	return user, ok
}

func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
