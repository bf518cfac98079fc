package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/tair/storefront/internal/store"
)

// StaticCredential pairs a sanitized user record with a bcrypt hash of its
// secret. Plaintext secrets are never held.
type StaticCredential struct {
	User       store.User
	SecretHash []byte
}

// StaticVerifier verifies credentials against a fixed in-memory directory.
// It exists for development and tests; production wiring should use a real
// identity provider such as HTTPVerifier.
type StaticVerifier struct {
	byEmail map[string]StaticCredential
}

// NewStaticVerifier creates a verifier over the given credentials
func NewStaticVerifier(creds []StaticCredential) *StaticVerifier {
	byEmail := make(map[string]StaticCredential, len(creds))
	for _, c := range creds {
		byEmail[c.User.Email] = c
	}
	return &StaticVerifier{byEmail: byEmail}
}

// Verify checks the secret against the stored hash. Unknown emails and
// wrong secrets produce the same error.
func (v *StaticVerifier) Verify(_ context.Context, email, secret string) (store.User, error) {
	cred, ok := v.byEmail[email]
	if !ok {
		// Burn a comparison anyway so unknown emails cost the same
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(secret))
		return store.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(cred.SecretHash, []byte(secret)); err != nil {
		return store.User{}, ErrInvalidCredentials
	}
	return cred.User, nil
}

// HashSecret hashes a secret for use in a StaticCredential
func HashSecret(secret string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
}

var dummyHash = mustHash("storefront-dummy")

func mustHash(secret string) []byte {
	h, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return h
}
