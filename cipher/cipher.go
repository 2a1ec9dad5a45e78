// Package cipher encrypts and decrypts the stored user payload. The envelope
// format is hex(iv) + ":" + hex(ciphertext); the AES-256 key is derived as
// SHA-256 of the caller supplied key string, so any per-user token works as
// an encryption key.
package cipher

import (
	"crypto/aes"
	aescipher "crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/viant/datastore/schema"
)

const ivSize = aes.BlockSize

// Encrypt serializes payload to JSON and encrypts it under a key derived
// from key, with a fresh random IV per call. Two encryptions of the same
// input never produce the same envelope.
func Encrypt(key string, payload any) (string, error) {
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	block, err := aes.NewCipher(deriveKey(key))
	if err != nil {
		return "", err
	}
	iv := make([]byte, ivSize)
	if _, err := rand.Read(iv); err != nil {
		return "", err
	}
	ciphertext := make([]byte, len(plaintext))
	aescipher.NewCTR(block, iv).XORKeyStream(ciphertext, plaintext)
	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(ciphertext), nil
}

// Decrypt reverses Encrypt and returns the deserialized payload. Any
// malformed, truncated or undecodable envelope fails with the single
// InvalidPayload error kind.
func Decrypt(key, envelope string) (any, error) {
	var payload any
	if err := DecryptInto(key, envelope, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// DecryptInto decrypts the envelope and unmarshals the payload into target.
func DecryptInto(key, envelope string, target any) error {
	iv, ciphertext, err := parseEnvelope(envelope)
	if err != nil {
		return schema.NewInvalidPayload()
	}
	block, err := aes.NewCipher(deriveKey(key))
	if err != nil {
		return schema.NewInvalidPayload()
	}
	plaintext := make([]byte, len(ciphertext))
	aescipher.NewCTR(block, iv).XORKeyStream(plaintext, ciphertext)
	if err := json.Unmarshal(plaintext, target); err != nil {
		return schema.NewInvalidPayload()
	}
	return nil
}

func parseEnvelope(envelope string) ([]byte, []byte, error) {
	encodedIV, encodedCiphertext, found := strings.Cut(envelope, ":")
	if !found {
		return nil, nil, schema.NewInvalidPayload()
	}
	iv, err := hex.DecodeString(encodedIV)
	if err != nil || len(iv) != ivSize {
		return nil, nil, schema.NewInvalidPayload()
	}
	ciphertext, err := hex.DecodeString(encodedCiphertext)
	if err != nil {
		return nil, nil, schema.NewInvalidPayload()
	}
	return iv, ciphertext, nil
}

func deriveKey(key string) []byte {
	derived := sha256.Sum256([]byte(key))
	return derived[:]
}
