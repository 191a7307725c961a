package domain

// ServiceIdentity pairs a trusted service identifier with its shared secret.
// A registered identity may carry an empty key when the secret is missing
// from configuration; the verifier treats such identities as having invalid
// credentials rather than skipping the signature check.
type ServiceIdentity struct {
	ID  string
	Key []byte
}

// HasKey reports whether the identity carries a non-empty secret key.
func (s ServiceIdentity) HasKey() bool {
	return len(s.Key) > 0
}

// KeyRegistry is an immutable mapping from service identifier to shared
// secret, built once at process start. It is read-only after construction
// and therefore safe for unsynchronized concurrent reads.
type KeyRegistry struct {
	identities map[string]ServiceIdentity
}

// NewKeyRegistry builds a registry from the configured id→secret map.
// Entries with empty secrets are kept so that a known-but-unkeyed service
// is distinguishable from an unknown one.
func NewKeyRegistry(keys map[string]string) *KeyRegistry {
	identities := make(map[string]ServiceIdentity, len(keys))
	for id, secret := range keys {
		identities[id] = ServiceIdentity{ID: id, Key: []byte(secret)}
	}
	return &KeyRegistry{identities: identities}
}

// Lookup resolves a service identifier to its identity. The second return
// value reports whether the identifier is registered at all.
func (r *KeyRegistry) Lookup(serviceID string) (ServiceIdentity, bool) {
	identity, ok := r.identities[serviceID]
	return identity, ok
}

// Len returns the number of registered identities.
func (r *KeyRegistry) Len() int {
	return len(r.identities)
}
