package commands

import (
	"fmt"
	"io"

	fieldService "github.com/allisson/svcguard/internal/fieldcrypto/service"
)

// RunEncryptField encrypts a single field value with the configured key and
// prints the base64 envelope.
func RunEncryptField(fieldCipher fieldService.FieldCipher, w io.Writer, value string) error {
	encrypted, err := fieldCipher.Encrypt(value)
	if err != nil {
		return fmt.Errorf("failed to encrypt value: %w", err)
	}

	fmt.Fprintln(w, encrypted)
	return nil
}
