package share

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

const keyInfo = "quanta share token v1"

var ErrInvalidToken = errors.New("invalid share token")

// Claims carry a calculator slug and the raw form inputs of one calculation.
type Claims struct {
	Calculator string            `json:"calc"`
	Inputs     map[string]string `json:"in"`
	jwt.RegisteredClaims
}

// Signer issues and verifies HS256 share tokens. Nothing is stored: a token
// is replayed by recomputing the calculation it names.
type Signer struct {
	key []byte
	ttl time.Duration
}

func NewSigner(key []byte, ttl time.Duration) *Signer {
	return &Signer{key: key, ttl: ttl}
}

// DeriveKey stretches the configured TOKEN_KEY into a 32 byte signing key,
// so short secrets from a .env file still give a full HS256 key.
func DeriveKey(secret string) ([]byte, error) {
	if secret == "" {
		return nil, errors.New("empty secret")
	}
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo)), key); err != nil {
		return nil, err
	}
	return key, nil
}

// RandomKey returns a key for processes started without TOKEN_KEY.
func RandomKey() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

func (s *Signer) Sign(slug string, inputs map[string]string) (string, error) {
	now := time.Now()
	claims := Claims{
		Calculator: slug,
		Inputs:     inputs,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign share token: %w", err)
	}
	return signed, nil
}

func (s *Signer) Verify(tokenString string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Calculator == "" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
