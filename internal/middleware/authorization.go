package middleware

import (
	"net/http"

	"club-merch/internal/domain"

	"go.uber.org/zap"
)

// RequireRole ensures the authenticated user has one of the given roles.
// Must run after AuthMiddleware.
func RequireRole(allowedRoles []domain.Role, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			if !ok {
				logger.Warn("User not found in context")
				respondWithError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			for _, role := range allowedRoles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.Warn("User role not authorized",
				zap.String("username", user.Username),
				zap.String("role", string(user.Role)),
			)
			respondWithError(w, http.StatusForbidden, "insufficient permissions")
		})
	}
}

// ScopeClub resolves which club the request may see analytics for. Platform
// staff may ask for any club (or all clubs with an empty id); a club admin
// is always pinned to their own club regardless of what was requested.
func ScopeClub(user *domain.AuthUser, requested string) (string, bool) {
	switch user.Role {
	case domain.RolePlatformStaff:
		return requested, true
	case domain.RoleClubAdmin:
		if requested != "" && requested != user.ClubID {
			return "", false
		}
		return user.ClubID, true
	default:
		return "", false
	}
}
