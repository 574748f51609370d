package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired inspects the exp claim of a JWT without verifying its
// signature. Unparseable tokens and tokens without an exp claim report
// false: the server stays the authority, this only lets the CLI warn
// before a doomed request.
func tokenExpired(token string, now time.Time) bool {
	if token == "" {
		return false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
