package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// minServiceKeyBytes is the smallest secret size accepted for HMAC-SHA256
// signing keys.
const minServiceKeyBytes = 32

// RunCreateServiceKey generates a cryptographically secure shared secret for
// a calling service and prints it in a copy-paste friendly format.
//
// Output format:
//   - SERVICE_AUTH_KEYS entry for the verifying side
//   - SERVICE_ID / SERVICE_KEY pair for the calling side
func RunCreateServiceKey(w io.Writer, serviceID string, keyBytes int) error {
	if serviceID == "" {
		return fmt.Errorf("service id cannot be empty")
	}
	if keyBytes < minServiceKeyBytes {
		return fmt.Errorf("key size must be at least %d bytes", minServiceKeyBytes)
	}

	secret := make([]byte, keyBytes)
	if _, err := rand.Read(secret); err != nil {
		return fmt.Errorf("failed to generate service key: %w", err)
	}

	encodedSecret := base64.RawURLEncoding.EncodeToString(secret)

	fmt.Fprintln(w, "# Service key configuration")
	fmt.Fprintln(w, "# Add to the verifying service (append to the existing list):")
	fmt.Fprintf(w, "SERVICE_AUTH_KEYS=\"%s=%s\"\n", serviceID, encodedSecret)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "# Add to the calling service:")
	fmt.Fprintf(w, "SERVICE_ID=\"%s\"\n", serviceID)
	fmt.Fprintf(w, "SERVICE_KEY=\"%s\"\n", encodedSecret)

	return nil
}
