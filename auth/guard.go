// Package auth holds the demo identity set and the route-guard decision
// logic shared by the HTTP middleware.
package auth

import "github.com/estatedesk/property_marketplace/backend/models"

// LoginPath is where unauthenticated requests are pointed.
const LoginPath = "/login"

// Decision is the outcome of a route-guard check. When Allow is false,
// Redirect names the path the caller should be sent to.
type Decision struct {
	Allow    bool
	Redirect string
}

// Decide applies the guard contract: unauthenticated callers go to the login
// page, authenticated callers outside the allowed set go to their own
// landing route, everyone else gets through. An empty allowed set admits any
// authenticated role.
func Decide(authenticated bool, role models.Role, allowed []models.Role) Decision {
	if !authenticated {
		return Decision{Redirect: LoginPath}
	}
	if len(allowed) == 0 {
		return Decision{Allow: true}
	}
	for _, a := range allowed {
		if role == a {
			return Decision{Allow: true}
		}
	}
	return Decision{Redirect: role.HomePath()}
}
