// Package http provides HTTP middleware and transports for service-to-service
// request signing and verification.
package http

import (
	"context"
)

// callerKey is a context key type for storing the verified calling service.
type callerKey struct{}

// WithCaller stores the verified calling service identifier in the context.
// This is called by the verification middleware after a signature is accepted.
func WithCaller(ctx context.Context, serviceID string) context.Context {
	return context.WithValue(ctx, callerKey{}, serviceID)
}

// GetCaller retrieves the verified calling service identifier from the context.
// Returns (serviceID, true) if present, or ("", false) if no caller was set.
func GetCaller(ctx context.Context) (string, bool) {
	serviceID, ok := ctx.Value(callerKey{}).(string)
	return serviceID, ok
}
