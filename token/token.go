// Package token issues the short-lived signed access tokens that authenticate
// requests to the user data store.
package token

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer signs access tokens with the shared service token. Now is
// overridable so tests can pin the issue time; nil means time.Now.
type Issuer struct {
	Secret string
	Now    func() time.Time
}

// New creates an Issuer signing with the given secret.
func New(secret string) *Issuer {
	return &Issuer{Secret: secret}
}

// Generate signs a token carrying a checksum over the canonical JSON
// serialization of claims and the issue time in whole seconds. The token is
// created per outgoing request and never persisted.
func (i *Issuer) Generate(claims any) (string, error) {
	checksum, err := Checksum(claims)
	if err != nil {
		return "", fmt.Errorf("failed to checksum claims: %w", err)
	}
	now := time.Now
	if i.Now != nil {
		now = i.Now
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"checksum": checksum,
		"iat":      now().Unix(),
	})
	return t.SignedString([]byte(i.Secret))
}

// Decode parses a token issued by Generate and verifies its signature. Used
// by the receiving side; the data store client itself never verifies.
func (i *Issuer) Decode(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(i.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// Checksum returns the lowercase hex SHA-256 of the canonical serialization
// of value: compact JSON with object keys sorted. Checksum equality is the
// cross-service compatibility contract, so the serialization must not change.
func Checksum(value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
