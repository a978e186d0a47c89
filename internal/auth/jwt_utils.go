package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
)

func jwtKey() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("super_secret_key_for_chain_ops_2025")
}

// Claims carry the caller's principal identity. The identity is the
// only thing the token proves; roles live in the users table.
type Claims struct {
	Identity string `json:"identity"`
	jwt.RegisteredClaims
}

// NewIdentity mints a fresh principal identity for an anonymous
// caller: sha3-256 over a random UUID, as a 64-char hex string.
func NewIdentity() string {
	id := uuid.New()
	seed := make([]byte, 0, len(id)+16)
	seed = append(seed, id[:]...)
	var extra [16]byte
	if _, err := rand.Read(extra[:]); err == nil {
		seed = append(seed, extra[:]...)
	}
	sum := sha3.Sum256(seed)
	return hex.EncodeToString(sum[:])
}

// GenerateToken creates a signed JWT for an identity
func GenerateToken(identity string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour) // Token lasts 1 day

	claims := &Claims{
		Identity: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// ValidateToken checks if a token is fake or expired
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
