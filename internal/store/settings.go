package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const jwtSecretKey = "krina/jwt_secret"

// JWTSecret retrieves the token signing secret from the store. If no secret
// exists yet, it generates one, stores it, and returns it, so session tokens
// survive restarts.
func (s *Store) JWTSecret(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.kv.Get(ctx, jwtSecretKey)
	if err != nil {
		return "", fmt.Errorf("reading jwt secret: %w", err)
	}
	if raw != nil {
		return string(raw), nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating jwt secret: %w", err)
	}
	secret := hex.EncodeToString(buf)

	if err := s.kv.Put(ctx, jwtSecretKey, []byte(secret)); err != nil {
		return "", fmt.Errorf("storing jwt secret: %w", err)
	}
	return secret, nil
}
