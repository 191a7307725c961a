package domain

import (
	"encoding/base64"
	"fmt"
)

// EncryptedField represents an encrypted field value split into its parts.
//
// The persisted form is a single opaque string: base64 of the concatenation
// IV(16) || ciphertext || tag(16), stored in the same column the plaintext
// would occupy. The format carries no version byte, so changing the
// algorithm or IV length later is a breaking format change.
type EncryptedField struct {
	IV         []byte
	Ciphertext []byte
	Tag        []byte
}

// ParseEncryptedField decodes the stored string form and splits it at fixed
// offsets into IV, ciphertext and tag. The ciphertext portion may be empty
// (an encrypted empty-after-trim value); anything shorter than IV+tag is
// rejected.
//
// Returns ErrInvalidEnvelope if the input is not valid base64 or is too short.
func ParseEncryptedField(encoded string) (EncryptedField, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return EncryptedField{}, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}

	if len(raw) < IVSize+TagSize {
		return EncryptedField{}, fmt.Errorf(
			"%w: %d bytes, need at least %d",
			ErrInvalidEnvelope,
			len(raw),
			IVSize+TagSize,
		)
	}

	return EncryptedField{
		IV:         raw[:IVSize],
		Ciphertext: raw[IVSize : len(raw)-TagSize],
		Tag:        raw[len(raw)-TagSize:],
	}, nil
}

// Encode serializes the field to its stored string form:
// base64(IV || ciphertext || tag).
func (f EncryptedField) Encode() string {
	raw := make([]byte, 0, len(f.IV)+len(f.Ciphertext)+len(f.Tag))
	raw = append(raw, f.IV...)
	raw = append(raw, f.Ciphertext...)
	raw = append(raw, f.Tag...)
	return base64.StdEncoding.EncodeToString(raw)
}
