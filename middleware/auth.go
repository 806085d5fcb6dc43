package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/estatedesk/property_marketplace/backend/auth"
	"github.com/estatedesk/property_marketplace/backend/controllers"
	"github.com/estatedesk/property_marketplace/backend/models"
	"github.com/estatedesk/property_marketplace/backend/utils"
)

// AuthMiddleware validates the Bearer token and stashes the claims in the
// request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		tokenHeader := r.Header.Get("Authorization")
		if tokenHeader == "" {
			log.Printf("Missing Authorization header from request %s %s", r.Method, r.URL)
			redirect(w, http.StatusUnauthorized, "Missing Authorization header", auth.LoginPath)
			return
		}

		tokenParts := strings.Split(tokenHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			log.Printf("Invalid Authorization header format from request %s %s", r.Method, r.URL)
			redirect(w, http.StatusUnauthorized, "Invalid Authorization header format", auth.LoginPath)
			return
		}

		claims, err := utils.ValidateJWT(tokenParts[1])
		if err != nil {
			log.Printf("Invalid or expired token: %v", err)
			redirect(w, http.StatusUnauthorized, "Invalid or expired token", auth.LoginPath)
			return
		}

		ctx := context.WithValue(r.Context(), controllers.ClaimsKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles applies the route-guard decision: unauthenticated callers are
// pointed at the login page, authenticated callers outside the allowed set
// at their own landing route.
func RequireRoles(allowed ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(controllers.ClaimsKey).(*utils.Claims)

			var role models.Role
			if ok {
				role = claims.Role
			}

			decision := auth.Decide(ok, role, allowed)
			if !decision.Allow {
				status := http.StatusForbidden
				if !ok {
					status = http.StatusUnauthorized
				}
				log.Printf("Access denied for role %q on %s %s", role, r.Method, r.URL)
				redirect(w, status, "Access denied", decision.Redirect)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func redirect(w http.ResponseWriter, status int, message, path string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"message":  message,
		"redirect": path,
	})
}
