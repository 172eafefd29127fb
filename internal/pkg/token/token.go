// Package token issues and verifies the bearer tokens handed out at signin.
//
// Tokens are HS256 JWTs carrying a single "id" claim with the account id.
// They are signed with a per-namespace secret: a token minted for the user
// namespace must never verify against the admin secret, and vice versa. No
// expiry is set, so a token stays valid for the life of its secret.
package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Issue signs a token embedding subjectID under the "id" claim.
func Issue(subjectID, secret string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id": subjectID,
	})
	return t.SignedString([]byte(secret))
}

// Verify parses tok against secret and returns the embedded subject id.
// Any failure (malformed token, wrong signing method, signature from another
// namespace, missing claim) collapses to ErrInvalidToken.
func Verify(tok, secret string) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", ErrInvalidToken
	}
	return id, nil
}
