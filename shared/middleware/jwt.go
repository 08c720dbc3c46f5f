package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/depang/shopping-mall-api/shared/auth"
	"github.com/depang/shopping-mall-api/shared/httputil"
)

type contextKey struct{}

// UserClaimsKey is the request context key holding the validated JWT claims.
var UserClaimsKey = contextKey{}

// RequireJWT returns middleware that rejects requests without a valid Bearer
// token signed with the given secret.
func RequireJWT(jwtAuth auth.JWTAuthenticator, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httputil.WriteError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				httputil.WriteError(w, http.StatusUnauthorized, "invalid authorization header format")
				return
			}

			claims := jwt.MapClaims{}
			if _, err := jwtAuth.ValidateTokenWithClaims(parts[1], secret, claims); err != nil {
				httputil.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
