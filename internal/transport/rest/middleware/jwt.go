package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"marketx/internal/domain"
)

type contextKey string

const userContextKey contextKey = "auth-user"

// JWT gates a route on a valid bearer token and puts the decoded claims on
// the request context for the downstream handler.
func JWT(tokens domain.TokenManager) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeMessage(w, http.StatusUnauthorized, "Authorization header missing")
				return
			}

			token := bearerToken(header)
			if token == "" {
				writeMessage(w, http.StatusUnauthorized, "Token missing")
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					writeMessage(w, http.StatusUnauthorized, "Token expired")
					return
				}
				writeMessage(w, http.StatusForbidden, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser returns the authenticated identity set by JWT.
func GetUser(ctx context.Context) (*domain.TokenClaims, bool) {
	claims, ok := ctx.Value(userContextKey).(*domain.TokenClaims)
	return claims, ok
}

// bearerToken extracts the token segment from "Bearer <token>".
func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
