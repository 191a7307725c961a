package commands

import (
	"bytes"
	"encoding/base64"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCreateServiceKey(t *testing.T) {
	t.Run("generates key configuration", func(t *testing.T) {
		var buf bytes.Buffer

		err := RunCreateServiceKey(&buf, "billing-api", 32)
		require.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, `SERVICE_AUTH_KEYS="billing-api=`)
		assert.Contains(t, output, `SERVICE_ID="billing-api"`)
		assert.Contains(t, output, `SERVICE_KEY="`)

		// The same secret appears on both sides of the configuration.
		re := regexp.MustCompile(`SERVICE_KEY="([^"]+)"`)
		match := re.FindStringSubmatch(output)
		require.Len(t, match, 2)
		assert.Contains(t, output, "billing-api="+match[1])

		secret, err := base64.RawURLEncoding.DecodeString(match[1])
		require.NoError(t, err)
		assert.Len(t, secret, 32)
	})

	t.Run("larger key size", func(t *testing.T) {
		var buf bytes.Buffer

		err := RunCreateServiceKey(&buf, "billing-api", 64)
		require.NoError(t, err)

		re := regexp.MustCompile(`SERVICE_KEY="([^"]+)"`)
		match := re.FindStringSubmatch(buf.String())
		require.Len(t, match, 2)

		secret, err := base64.RawURLEncoding.DecodeString(match[1])
		require.NoError(t, err)
		assert.Len(t, secret, 64)
	})

	t.Run("keys are unique", func(t *testing.T) {
		var first, second bytes.Buffer
		require.NoError(t, RunCreateServiceKey(&first, "billing-api", 32))
		require.NoError(t, RunCreateServiceKey(&second, "billing-api", 32))
		assert.NotEqual(t, first.String(), second.String())
	})

	t.Run("empty service id fails", func(t *testing.T) {
		var buf bytes.Buffer
		err := RunCreateServiceKey(&buf, "", 32)
		assert.EqualError(t, err, "service id cannot be empty")
	})

	t.Run("key size below minimum fails", func(t *testing.T) {
		var buf bytes.Buffer
		err := RunCreateServiceKey(&buf, "billing-api", 16)
		assert.EqualError(t, err, "key size must be at least 32 bytes")
	})
}
