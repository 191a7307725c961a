package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	fieldDomain "github.com/allisson/svcguard/internal/fieldcrypto/domain"
)

// AESGCMFieldCipher implements FieldCipher using AES-256-GCM with a 16-byte
// random IV per encryption call, matching the stored envelope format
// IV(16) || ciphertext || tag(16).
//
// The cipher instance is stateless and safe for concurrent use from multiple
// goroutines. Each encryption operation generates a unique IV independently,
// so identical plaintexts encrypt to different ciphertexts and (IV, key)
// pairs are never reused.
type AESGCMFieldCipher struct {
	aead cipher.AEAD
}

// NewAESGCMFieldCipher creates a field cipher from configured key material.
//
// The 32-byte AES key is derived from the key material via HKDF-SHA256 with
// a versioned info string, separating the stored configuration value from
// the key actually used for encryption. Key material shorter than
// domain.MinKeyMaterialSize fails construction with ErrKeyMaterialTooShort;
// there is no fallback key and no insecure default.
func NewAESGCMFieldCipher(keyMaterial []byte) (*AESGCMFieldCipher, error) {
	if len(keyMaterial) < fieldDomain.MinKeyMaterialSize {
		return nil, fieldDomain.ErrKeyMaterialTooShort
	}

	key, err := deriveKey(keyMaterial)
	if err != nil {
		return nil, fmt.Errorf("failed to derive field encryption key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	// The envelope format fixes the IV at 16 bytes, so GCM is opened with a
	// matching nonce size instead of the 12-byte default.
	aead, err := cipher.NewGCMWithNonceSize(block, fieldDomain.IVSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMFieldCipher{aead: aead}, nil
}

// deriveKey uses HKDF-SHA256 to derive the 32-byte AES key from key material.
// Info parameter: "field-encryption-v1" (versioned for future algorithm changes).
func deriveKey(keyMaterial []byte) ([]byte, error) {
	info := []byte("field-encryption-v1")
	reader := hkdf.New(sha256.New, keyMaterial, nil, info)

	key := make([]byte, fieldDomain.KeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// Encrypt encrypts plaintext and returns the encoded envelope.
//
// Empty plaintext is returned unchanged. Otherwise a fresh random 16-byte IV
// is generated, the plaintext is sealed, and the result is encoded as
// base64(IV || ciphertext || tag).
func (c *AESGCMFieldCipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	iv := make([]byte, fieldDomain.IVSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("%w: %v", fieldDomain.ErrEncryptionFailed, err)
	}

	// Seal appends the tag to the ciphertext; the envelope splits it back
	// out at a fixed offset.
	sealed := c.aead.Seal(nil, iv, []byte(plaintext), nil)

	envelope := fieldDomain.EncryptedField{
		IV:         iv,
		Ciphertext: sealed[:len(sealed)-fieldDomain.TagSize],
		Tag:        sealed[len(sealed)-fieldDomain.TagSize:],
	}
	return envelope.Encode(), nil
}

// Decrypt recovers the plaintext from an encoded envelope.
//
// Empty input is returned unchanged. Corrupted or tampered data (any flipped
// bit in IV, ciphertext or tag) yields domain.ErrDecryptionFailed so callers
// can detect the failure instead of storing an un-decryptable placeholder.
func (c *AESGCMFieldCipher) Decrypt(encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}

	envelope, err := fieldDomain.ParseEncryptedField(encoded)
	if err != nil {
		return "", err
	}

	sealed := make([]byte, 0, len(envelope.Ciphertext)+len(envelope.Tag))
	sealed = append(sealed, envelope.Ciphertext...)
	sealed = append(sealed, envelope.Tag...)

	plaintext, err := c.aead.Open(nil, envelope.IV, sealed, nil)
	if err != nil {
		return "", fieldDomain.ErrDecryptionFailed
	}
	return string(plaintext), nil
}
