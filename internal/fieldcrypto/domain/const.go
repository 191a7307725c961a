// Package domain defines field-encryption domain models and errors.
package domain

const (
	// IVSize is the initialization vector length in bytes. The stored format
	// is fixed at IV(16) || ciphertext || tag(16), so GCM is instantiated
	// with a 16-byte nonce size rather than the conventional 12 bytes.
	IVSize = 16

	// TagSize is the GCM authentication tag length in bytes.
	TagSize = 16

	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	// MinKeyMaterialSize is the minimum configured key material length.
	// Shorter material fails cipher construction; there is no fallback key.
	MinKeyMaterialSize = 32
)
