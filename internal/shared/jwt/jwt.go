package jwt

import (
	"errors"
	"time"

	jw "github.com/golang-jwt/jwt/v5"
)

// Parse validates an HS256 JWT against the given secret and returns the
// external user id from the "sub" claim.
func Parse(tok, secret string) (string, error) {
	t, err := jw.Parse(tok, func(t *jw.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil || !t.Valid {
		return "", errors.New("invalid token")
	}
	mc, ok := t.Claims.(jw.MapClaims)
	if !ok {
		return "", errors.New("bad claims")
	}
	sub, _ := mc["sub"].(string)
	if sub == "" {
		return "", errors.New("no subject")
	}
	if exp, ok := mc["exp"].(float64); ok && time.Now().Unix() > int64(exp) {
		return "", errors.New("token expired")
	}
	return sub, nil
}

// Sign issues an HS256 token for the given external user id. Used by the
// seeder and tests; real tokens come from the identity provider.
func Sign(sub, secret string, ttl time.Duration) (string, error) {
	claims := jw.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(ttl).Unix(),
	}
	return jw.NewWithClaims(jw.SigningMethodHS256, claims).SignedString([]byte(secret))
}
