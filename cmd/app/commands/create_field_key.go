package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	fieldDomain "github.com/allisson/svcguard/internal/fieldcrypto/domain"
)

// RunCreateFieldKey generates cryptographically secure key material for field
// encryption and prints it base64-encoded, ready for FIELD_ENCRYPTION_KEY.
func RunCreateFieldKey(w io.Writer) error {
	keyMaterial := make([]byte, fieldDomain.MinKeyMaterialSize)
	if _, err := rand.Read(keyMaterial); err != nil {
		return fmt.Errorf("failed to generate field encryption key: %w", err)
	}

	encodedKey := base64.StdEncoding.EncodeToString(keyMaterial)

	fmt.Fprintln(w, "# Field encryption key configuration")
	fmt.Fprintf(w, "FIELD_ENCRYPTION_KEY=\"%s\"\n", encodedKey)

	// Zero out the key material from memory
	for i := range keyMaterial {
		keyMaterial[i] = 0
	}

	return nil
}
