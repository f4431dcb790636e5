package middleware

import (
	"context"
	"net/http"
	"strings"

	"qsplan-backend/internal/auth"
	"qsplan-backend/internal/models"
)

type contextKey string

const UserKey contextKey = "user"

// UserGetter resolves the user row behind a token's subject.
type UserGetter interface {
	Get(ctx context.Context, id int) (*models.User, error)
}

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	userRepo   UserGetter
}

func NewAuthMiddleware(jwtManager *auth.JWTManager, userRepo UserGetter) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		userRepo:   userRepo,
	}
}

func (m *AuthMiddleware) resolveUser(r *http.Request) (*models.User, int, string) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, http.StatusUnauthorized, "Authorization header required"
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, http.StatusUnauthorized, "Invalid authorization format"
	}

	claims, err := m.jwtManager.ValidateToken(parts[1])
	if err != nil {
		return nil, http.StatusUnauthorized, "Invalid or expired token"
	}

	// Re-read the user row so role changes and suspensions apply immediately,
	// not only after token expiry
	user, err := m.userRepo.Get(r.Context(), claims.UserID)
	if err != nil {
		return nil, http.StatusUnauthorized, "User not found"
	}

	if !user.IsActive {
		return nil, http.StatusForbidden, "Account suspended. Please contact administrator."
	}

	return user, 0, ""
}

// Authenticate validates the bearer token and loads the acting user into the
// request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, status, msg := m.resolveUser(r)
		if user == nil {
			http.Error(w, msg, status)
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole ensures the user has one of the allowed roles
func (m *AuthMiddleware) RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, status, msg := m.resolveUser(r)
			if user == nil {
				http.Error(w, msg, status)
				return
			}

			hasRole := false
			for _, role := range allowedRoles {
				if user.Role == role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				http.Error(w, "Forbidden: Insufficient permissions", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireReviewer restricts a route to admin and auditor roles
func (m *AuthMiddleware) RequireReviewer(next http.Handler) http.Handler {
	return m.RequireRole(models.RoleAdmin, models.RoleAuditor)(next)
}

// RequireAdmin restricts a route to the admin role
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return m.RequireRole(models.RoleAdmin)(next)
}

// GetUserFromContext extracts the acting user from the request context
func GetUserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserKey).(*models.User)
	return user, ok
}
