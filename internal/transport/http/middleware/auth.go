package middleware

import (
	"context"
	"net/http"
	"strings"

	"driverpay/internal/auth"
	"driverpay/internal/transport/http/api"
)

// RequireToken checks for a bearer token signed with secret that carries scope.
// An empty secret disables the check.
func RequireToken(secret, scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if strings.TrimSpace(secret) == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())
			parts := strings.Fields(r.Header.Get("Authorization"))
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "bearer token required", requestID)
				return
			}
			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid token", requestID)
				return
			}
			if scope != "" && !claims.HasScope(scope) {
				api.Fail(w, http.StatusForbidden, "forbidden", "token lacks scope "+scope, requestID)
				return
			}
			ctx := context.WithValue(r.Context(), claimsKey, *claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(auth.Claims)
	return claims, ok
}
