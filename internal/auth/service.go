package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidKey is returned when the provided admin key does not match.
var ErrInvalidKey = errors.New("invalid admin key")

// KeyPrefix starts every generated admin key.
const KeyPrefix = "sqk_"

// Service checks admin keys against a configured bcrypt hash.
type Service struct {
	hash []byte
}

// NewService creates a new auth Service. An empty hash disables key checks.
func NewService(hash string) (*Service, error) {
	if hash == "" {
		return &Service{}, nil
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("parsing admin key hash: %w", err)
	}
	return &Service{hash: []byte(hash)}, nil
}

// Enabled reports whether mutating requests must present an admin key.
func (s *Service) Enabled() bool {
	return s != nil && len(s.hash) > 0
}

// Authenticate compares rawKey with the configured hash.
func (s *Service) Authenticate(rawKey string) error {
	if !s.Enabled() {
		return nil
	}
	if rawKey == "" || bcrypt.CompareHashAndPassword(s.hash, []byte(rawKey)) != nil {
		return ErrInvalidKey
	}
	return nil
}

// GenerateKey creates a new admin key and its bcrypt hash. The raw key is:
// 32 random bytes -> base64url -> prepend KeyPrefix.
func GenerateKey(cost int) (rawKey, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generating random bytes: %w", err)
	}

	rawKey = KeyPrefix + base64.RawURLEncoding.EncodeToString(b)

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(rawKey), cost)
	if err != nil {
		return "", "", fmt.Errorf("hashing key: %w", err)
	}

	return rawKey, string(hashBytes), nil
}
