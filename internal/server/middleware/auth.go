package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"jobcart/internal/auth"
	"jobcart/internal/server/handlers"
)

// Authenticate creates middleware that verifies the bearer token and puts
// the caller's identity into the request context.
func Authenticate(logger *slog.Logger, jwtConfig auth.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("missing Authorization header")
				http.Error(w, "Unauthorized: missing token", http.StatusUnauthorized)
				return
			}

			// Expected format: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("invalid Authorization header format")
				http.Error(w, "Unauthorized: invalid token format", http.StatusUnauthorized)
				return
			}

			claims, err := auth.ParseToken(jwtConfig, parts[1])
			if err != nil {
				logger.Warn("invalid access token", "error", err)
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), handlers.UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, handlers.UsernameKey, claims.Username)
			ctx = context.WithValue(ctx, handlers.RoleKey, claims.Role)

			logger.Debug("user authenticated", "user_id", claims.UserID, "username", claims.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole creates middleware that rejects authenticated callers whose
// role claim differs from the required one. Must run after Authenticate.
func RequireRole(logger *slog.Logger, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := handlers.GetRole(r.Context())
			if !ok || got != role {
				username, _ := handlers.GetUsername(r.Context())
				logger.Warn("role check failed",
					"username", username,
					"required_role", role,
					"role", got)
				http.Error(w, "Forbidden: "+role+" role required", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
