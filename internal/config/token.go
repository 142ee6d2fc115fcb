package config

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenExpiry extracts the expiry claim from a JWT without verifying its
// signature. The client only uses this to warn the user before the backend
// would reject the token anyway; verification is the backend's job.
// Returns ok=false for opaque tokens or tokens without an exp claim.
func TokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(exp), 0), true
}

// TokenSubject extracts the subject claim (the logged-in user's id) from a
// JWT without verifying its signature. Returns ok=false for opaque tokens or
// tokens without a sub claim.
func TokenSubject(token string) (string, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return "", false
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", false
	}
	return sub, true
}
