package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pairlog/checkin/internal/core/domain"
)

type contextKey string

const (
	UserIDKey     contextKey = "userID"
	CapabilityKey contextKey = "capability"
)

// AuthMiddleware authenticates requests from the access_token cookie and
// places the caller's id and capability token in the request context. The
// elevated capability comes from the verified "admin" claim, never from a
// client-supplied identity comparison.
func AuthMiddleware(jwtSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("access_token")
			if err != nil {
				http.Error(w, "Unauthorized: missing access token", http.StatusUnauthorized)
				return
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return jwtSecret, nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "Unauthorized: invalid access token", http.StatusUnauthorized)
				return
			}

			sub, err := claims.GetSubject()
			if err != nil {
				http.Error(w, "Unauthorized: invalid token subject", http.StatusUnauthorized)
				return
			}
			userID, err := uuid.Parse(sub)
			if err != nil {
				http.Error(w, "Unauthorized: invalid token subject", http.StatusUnauthorized)
				return
			}

			elevated, _ := claims["admin"].(bool)

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			ctx = context.WithValue(ctx, CapabilityKey, domain.Capability{UserID: userID, Elevated: elevated})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
