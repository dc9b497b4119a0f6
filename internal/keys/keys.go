// Package keys generates the ephemeral signing key the demo server
// advertises. The public half is served at /.well-known/jwks.json; the
// private half is deliberately leaked by the fake actuator endpoint to
// demonstrate key disclosure through management routes.
package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
)

// KeyPair holds the process-lifetime signing key in JWK form.
type KeyPair struct {
	KeyID      string
	PrivateJWK jwk.Key
	PublicSet  jwk.Set
}

// Generate creates a fresh Ed25519 key pair. The key is never written to
// disk; it exists only so the server has something realistic to leak.
func Generate() (*KeyPair, error) {
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Ed25519 key: %w", err)
	}

	keyID := uuid.NewString()

	key, err := jwk.Import(privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWK from Ed25519 private key: %w", err)
	}

	if err := key.Set(jwk.KeyIDKey, keyID); err != nil {
		return nil, fmt.Errorf("failed to set key ID: %w", err)
	}
	if err := key.Set(jwk.AlgorithmKey, jwa.EdDSA()); err != nil {
		return nil, fmt.Errorf("failed to set algorithm: %w", err)
	}
	if err := key.Set(jwk.KeyUsageKey, jwk.ForSignature); err != nil {
		return nil, fmt.Errorf("failed to set key usage: %w", err)
	}

	publicKey, err := jwk.PublicKeyOf(key)
	if err != nil {
		return nil, fmt.Errorf("failed to derive public JWK: %w", err)
	}

	publicSet := jwk.NewSet()
	if err := publicSet.AddKey(publicKey); err != nil {
		return nil, fmt.Errorf("failed to add public key to JWK set: %w", err)
	}

	return &KeyPair{
		KeyID:      keyID,
		PrivateJWK: key,
		PublicSet:  publicSet,
	}, nil
}
