package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/estatedesk/property_marketplace/backend/models"
)

// ErrInvalidCredentials is the single failure the login surface reports; it
// deliberately does not distinguish an unknown email from a wrong password
// or a mismatched role.
var ErrInvalidCredentials = errors.New("invalid credentials")

const demoPassword = "demo123"

var demoUsers = map[string]models.User{
	"user@demo.com":  {ID: 1, Email: "user@demo.com", Name: "Demo User", Role: models.RoleUser},
	"owner@demo.com": {ID: 2, Email: "owner@demo.com", Name: "Demo Owner", Role: models.RoleOwner},
	"admin@demo.com": {ID: 3, Email: "admin@demo.com", Name: "Demo Admin", Role: models.RoleAdmin},
}

// demoHash is derived once at startup; the identities are fixtures, not
// stored credentials.
var demoHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return h
}()

// Login checks the email/password/declared-role triple against the three
// demo identities.
func Login(email, password string, role models.Role) (models.User, error) {
	user, ok := demoUsers[email]
	if !ok || user.Role != role {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(demoHash, []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
