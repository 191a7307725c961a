package commands

import (
	"fmt"
	"io"

	signingService "github.com/allisson/svcguard/internal/signing/service"
)

// RunSignRequest computes the signature envelope for a request and prints the
// three authentication headers. Useful for testing a verifying service with
// curl without writing client code.
func RunSignRequest(
	signer *signingService.OutboundSigner,
	w io.Writer,
	method, path, body string,
) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	envelope := signer.Sign(method, path, []byte(body))

	for name, value := range envelope.Headers() {
		fmt.Fprintf(w, "%s: %s\n", name, value)
	}

	return nil
}
