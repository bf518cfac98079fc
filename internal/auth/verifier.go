package auth

import (
	"context"
	"errors"

	"github.com/tair/storefront/internal/store"
)

// Credential verification errors. ErrInvalidCredentials is deliberately
// generic: it never discloses which of email or secret was wrong.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnavailable        = errors.New("authentication service unavailable")
)

// Verifier checks credentials against an identity provider and returns a
// sanitized user record. Implementations must never retain or return the
// secret.
type Verifier interface {
	Verify(ctx context.Context, email, secret string) (store.User, error)
}
