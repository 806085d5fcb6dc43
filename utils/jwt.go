package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/estatedesk/property_marketplace/backend/models"
)

type Claims struct {
	UserID string      `json:"userID"`
	Name   string      `json:"name"`
	Role   models.Role `json:"role"`
	jwt.StandardClaims
}

// OwnerID is the subject as the store's owner key.
func (c *Claims) OwnerID() string {
	return c.UserID
}

func jwtKey() []byte {
	return []byte(os.Getenv("JWT_KEY"))
}

func GenerateJWT(user models.User) (string, error) {
	expirationTime := time.Now().Add(12 * time.Hour)

	claims := &Claims{
		UserID: strconv.Itoa(user.ID),
		Name:   user.Name,
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    "property_marketplace",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtKey())
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ValidateJWT(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})

	if err != nil {
		if err == jwt.ErrSignatureInvalid {
			return nil, errors.New("invalid token signature")
		}
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if _, ok := models.ParseRole(string(claims.Role)); !ok {
		return nil, errors.New("unknown role in token")
	}

	return claims, nil
}
