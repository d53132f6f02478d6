package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const appPasswordScope = "com.atproto.appPass"

type accessClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// IsAppPasswordToken reports whether the access JWT was issued for an
// app-password login rather than a full account login. The token is decoded
// without signature verification: it came from the issuing service over the
// session call itself, and only the scope claim is read.
func IsAppPasswordToken(accessJwt string) bool {
	claims, err := decodeAccessClaims(accessJwt)
	if err != nil {
		return false
	}

	return claims.Scope == appPasswordScope
}

// AccessTokenExpiry returns the exp claim of the access JWT, or the zero time
// when the token cannot be decoded or carries no expiry.
func AccessTokenExpiry(accessJwt string) time.Time {
	claims, err := decodeAccessClaims(accessJwt)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}

	return claims.ExpiresAt.Time
}

func decodeAccessClaims(accessJwt string) (accessClaims, error) {
	var claims accessClaims
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(accessJwt, &claims); err != nil {
		return accessClaims{}, err
	}

	return claims, nil
}
