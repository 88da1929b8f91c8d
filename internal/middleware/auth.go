package middleware

import (
	"net/http"
	"strings"

	"agriconnect-be/internal/user"
	"agriconnect-be/internal/utils"
)

// AuthMiddleware attaches the authenticated user to the request context
// when a valid bearer token is present. Requests without a token pass
// through anonymously; handlers that need a user check the context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := utils.WithUser(r.Context(), claims.UserID, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
