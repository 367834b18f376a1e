// Package auth issues and verifies the signed bearer tokens that establish
// a caller's identity. Tokens are stateless: nothing is persisted on issue
// and verification never touches the data store. Role decisions are NOT
// made from the token — the admin middleware re-reads the user record on
// every request.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shashiranjanraj/bistro/config"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is the fixed lifetime of an access token.
const TokenTTL = time.Hour

// Claims holds the typed JWT payload. Only the email travels in the token;
// the role is always looked up fresh from the users collection.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.JWTSecret())
}

// GenerateToken creates a signed JWT for the given email, expiring TokenTTL
// from now.
func GenerateToken(email string) (string, error) {
	return generateToken(email, TokenTTL)
}

func generateToken(email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ValidateToken parses and validates a JWT string. It fails for malformed,
// expired, and wrongly-signed tokens alike.
func ValidateToken(t string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return secret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
