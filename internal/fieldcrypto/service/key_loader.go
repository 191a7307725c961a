package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"gocloud.dev/secrets"

	fieldDomain "github.com/allisson/svcguard/internal/fieldcrypto/domain"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// EnvKeyLoader loads field-encryption key material from a base64-encoded
// configuration value.
type EnvKeyLoader struct {
	encodedKey string
}

// NewEnvKeyLoader creates a loader for a base64-encoded key value.
func NewEnvKeyLoader(encodedKey string) *EnvKeyLoader {
	return &EnvKeyLoader{encodedKey: encodedKey}
}

// LoadKeyMaterial decodes the configured key. Missing or undecodable
// configuration is an error, never a default.
func (l *EnvKeyLoader) LoadKeyMaterial(_ context.Context) ([]byte, error) {
	if l.encodedKey == "" {
		return nil, fieldDomain.ErrKeyMaterialTooShort
	}
	keyMaterial, err := base64.StdEncoding.DecodeString(l.encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode field encryption key: %w", err)
	}
	return keyMaterial, nil
}

// KMSKeyLoader loads field-encryption key material by unwrapping a
// KMS-wrapped blob through gocloud.dev/secrets.
//
// Supported key URIs: gcpkms://, awskms://, azurekeyvault://, hashivault://,
// base64key:// (local).
type KMSKeyLoader struct {
	keyURI     string
	wrappedKey string
}

// NewKMSKeyLoader creates a loader that unwraps wrappedKey (base64) with the
// KMS key identified by keyURI.
func NewKMSKeyLoader(keyURI, wrappedKey string) *KMSKeyLoader {
	return &KMSKeyLoader{keyURI: keyURI, wrappedKey: wrappedKey}
}

// LoadKeyMaterial opens the KMS keeper and decrypts the wrapped key material.
func (l *KMSKeyLoader) LoadKeyMaterial(ctx context.Context) ([]byte, error) {
	if l.wrappedKey == "" {
		return nil, fieldDomain.ErrKeyMaterialTooShort
	}

	wrapped, err := base64.StdEncoding.DecodeString(l.wrappedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode wrapped field encryption key: %w", err)
	}

	keeper, err := secrets.OpenKeeper(ctx, l.keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer keeper.Close() //nolint:errcheck

	keyMaterial, err := keeper.Decrypt(ctx, wrapped)
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap field encryption key: %w", err)
	}
	return keyMaterial, nil
}
