package commands

import (
	"fmt"
	"io"

	fieldService "github.com/allisson/svcguard/internal/fieldcrypto/service"
)

// RunDecryptField decrypts a base64 envelope with the configured key and
// prints the plaintext.
func RunDecryptField(fieldCipher fieldService.FieldCipher, w io.Writer, value string) error {
	plaintext, err := fieldCipher.Decrypt(value)
	if err != nil {
		return fmt.Errorf("failed to decrypt value: %w", err)
	}

	fmt.Fprintln(w, plaintext)
	return nil
}
