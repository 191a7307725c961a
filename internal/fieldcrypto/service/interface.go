// Package service implements authenticated field encryption for values that
// must be protected before reaching durable storage. The cipher is stateless
// and safe for concurrent use; encryption and decryption of different field
// values never interact.
package service

import "context"

// FieldCipher encrypts and decrypts sensitive string fields.
type FieldCipher interface {
	// Encrypt returns the encoded envelope for plaintext. Empty plaintext is
	// returned unchanged: encryption is skipped for empty values.
	Encrypt(plaintext string) (string, error)

	// Decrypt recovers the plaintext from an encoded envelope. Empty input is
	// returned unchanged. Tampered or corrupted data yields
	// domain.ErrDecryptionFailed, never a silently wrong plaintext.
	Decrypt(encoded string) (string, error)
}

// KeyLoader resolves the field-encryption key material at startup.
type KeyLoader interface {
	// LoadKeyMaterial returns the raw key material bytes. Implementations
	// fail when the material is absent rather than substituting a default.
	LoadKeyMaterial(ctx context.Context) ([]byte, error)
}
