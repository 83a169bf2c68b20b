// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, identifier generation,
// and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClientSlugCtxKey is the key used to store the tenant slug a request was
// resolved to. Used together with GetClientSlugFromContext.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ClientSlugCtxKey, "acme")
var ClientSlugCtxKey = contextKey("clientSlug")

// GetClientSlugFromContext retrieves the tenant slug from the context.
//
// Returns the slug and an ok flag:
//   - ok == true : value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetClientSlugFromContext(ctx context.Context) (string, bool) {
	slug, ok := ctx.Value(ClientSlugCtxKey).(string)
	if !ok || slug == "" {
		return "", false
	}
	return slug, true
}
