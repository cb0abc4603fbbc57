package mockapi

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// devToken is the fixed access token issued for the seeded admin
	// credentials, so local tooling can hardcode it.
	devToken  = "mock-jwt-token"
	devUserID = "admin-1"

	signingKey = "fleetdash-mockapi-dev"
	tokenTTL   = time.Hour
)

func issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    "fleetdash-mockapi",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signingKey))
}

// subjectOf validates an access token and returns the user id it names.
func subjectOf(token string) (string, error) {
	if token == devToken {
		return devUserID, nil
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (any, error) {
		return []byte(signingKey), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", err
	}

	return claims.Subject, nil
}
