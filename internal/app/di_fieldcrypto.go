package app

import (
	"context"
	"fmt"

	fieldService "github.com/allisson/svcguard/internal/fieldcrypto/service"
)

// KeyLoader returns the field-encryption key loader. When a KMS key URI is
// configured the key material is unwrapped through the KMS provider,
// otherwise the base64-encoded environment value is used directly.
func (c *Container) KeyLoader() fieldService.KeyLoader {
	c.keyLoaderInit.Do(func() {
		c.keyLoader = c.initKeyLoader()
	})
	return c.keyLoader
}

// FieldCipher returns the AES-256-GCM field cipher.
func (c *Container) FieldCipher() (fieldService.FieldCipher, error) {
	var err error
	c.fieldCipherInit.Do(func() {
		c.fieldCipher, err = c.initFieldCipher()
		if err != nil {
			c.initErrors["fieldCipher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fieldCipher"]; exists {
		return nil, storedErr
	}
	return c.fieldCipher, nil
}

// initKeyLoader selects the key loader based on configuration.
func (c *Container) initKeyLoader() fieldService.KeyLoader {
	if c.config.FieldEncryptionKMSKeyURI != "" {
		return fieldService.NewKMSKeyLoader(
			c.config.FieldEncryptionKMSKeyURI,
			c.config.FieldEncryptionWrappedKey,
		)
	}
	return fieldService.NewEnvKeyLoader(c.config.FieldEncryptionKey)
}

// initFieldCipher loads the key material and constructs the field cipher.
// Construction fails fast on missing or short key material.
func (c *Container) initFieldCipher() (fieldService.FieldCipher, error) {
	keyMaterial, err := c.KeyLoader().LoadKeyMaterial(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load field encryption key material: %w", err)
	}

	fieldCipher, err := fieldService.NewAESGCMFieldCipher(keyMaterial)
	if err != nil {
		return nil, fmt.Errorf("failed to create field cipher: %w", err)
	}
	return fieldCipher, nil
}
