package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/estatedesk/property_marketplace/backend/auth"
	"github.com/estatedesk/property_marketplace/backend/models"
	"github.com/estatedesk/property_marketplace/backend/utils"
)

type ContextKey string

// ClaimsKey carries the validated token claims through the request context.
const ClaimsKey = ContextKey("claims")

type Response struct {
	Message  string       `json:"message"`
	Token    string       `json:"token,omitempty"`
	User     *models.User `json:"user,omitempty"`
	Redirect string       `json:"redirect,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginUser checks the demo identity triple and issues a token. The failure
// response is generic on purpose: unknown email, wrong password and
// mismatched role all look the same to the caller.
func LoginUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Error decoding login payload: %v", err)
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}

		role, ok := models.ParseRole(req.Role)
		if !ok {
			log.Printf("Login with unknown role %q", req.Role)
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		user, err := auth.Login(req.Email, req.Password, role)
		if err != nil {
			log.Printf("Login failed for %s", req.Email)
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		token, err := utils.GenerateJWT(user)
		if err != nil {
			log.Printf("Error generating JWT token: %v", err)
			http.Error(w, "Failed to generate token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{
			Message:  "Login successful",
			Token:    token,
			User:     &user,
			Redirect: user.Role.HomePath(),
		})
	}
}

// LogoutUser is advisory: sessions are stateless JWTs, so logging out is the
// client dropping its token. The endpoint exists for symmetry with login.
func LogoutUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Logged out", Redirect: "/"})
	}
}

// claimsFrom pulls the validated claims the auth middleware stored.
func claimsFrom(r *http.Request) (*utils.Claims, bool) {
	claims, ok := r.Context().Value(ClaimsKey).(*utils.Claims)
	return claims, ok
}
