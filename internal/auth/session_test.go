package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/store"
)

type verifyResult struct {
	user store.User
	err  error
}

// gatedVerifier blocks each Verify call until a result is fed to the gate
// keyed by the attempt's secret, so tests control completion order.
type gatedVerifier struct {
	gates map[string]chan verifyResult
}

func newGatedVerifier(secrets ...string) *gatedVerifier {
	gates := make(map[string]chan verifyResult, len(secrets))
	for _, s := range secrets {
		gates[s] = make(chan verifyResult, 1)
	}
	return &gatedVerifier{gates: gates}
}

func (v *gatedVerifier) Verify(_ context.Context, _, secret string) (store.User, error) {
	r := <-v.gates[secret]
	return r.user, r.err
}

func (v *gatedVerifier) resolve(secret string, r verifyResult) {
	v.gates[secret] <- r
}

func demoUser() store.User {
	return store.User{ID: "1", Email: "user@example.com", Name: "Demo User"}
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("login attempt did not resolve")
	}
}

func TestSession_LoginSuccess(t *testing.T) {
	st := store.New()
	verifier := newGatedVerifier("pw")
	session := NewSession(st, verifier)

	done := session.Login(context.Background(), "user@example.com", "pw")
	assert.Equal(t, store.Authenticating, st.State().Auth.Status)

	verifier.resolve("pw", verifyResult{user: demoUser()})
	waitDone(t, done)

	state := st.State()
	assert.True(t, store.IsAuthenticated(state))
	user, ok := store.CurrentUser(state)
	require.True(t, ok)
	assert.Equal(t, "user@example.com", user.Email)
}

func TestSession_LoginFailure(t *testing.T) {
	st := store.New()
	verifier := newGatedVerifier("pw")
	session := NewSession(st, verifier)

	done := session.Login(context.Background(), "user@example.com", "pw")
	verifier.resolve("pw", verifyResult{err: ErrInvalidCredentials})
	waitDone(t, done)

	state := st.State()
	assert.Equal(t, store.AuthFailed, state.Auth.Status)
	assert.False(t, store.IsAuthenticated(state))
	assert.Nil(t, state.Auth.User)
}

// A newer login supersedes the one still in flight: the first attempt's
// completion must be discarded even if it arrives later.
func TestSession_SupersededAttemptIsDiscarded(t *testing.T) {
	st := store.New()
	verifier := newGatedVerifier("first", "second")
	session := NewSession(st, verifier)

	doneFirst := session.Login(context.Background(), "user@example.com", "first")
	doneSecond := session.Login(context.Background(), "user@example.com", "second")

	// The stale attempt succeeds, but must not authenticate
	verifier.resolve("first", verifyResult{user: demoUser()})
	waitDone(t, doneFirst)
	assert.Equal(t, store.Authenticating, st.State().Auth.Status)

	verifier.resolve("second", verifyResult{err: ErrInvalidCredentials})
	waitDone(t, doneSecond)
	assert.Equal(t, store.AuthFailed, st.State().Auth.Status)
}

func TestSession_LogoutInvalidatesPendingAttempt(t *testing.T) {
	st := store.New()
	verifier := newGatedVerifier("pw")
	session := NewSession(st, verifier)

	done := session.Login(context.Background(), "user@example.com", "pw")
	session.Logout()

	verifier.resolve("pw", verifyResult{user: demoUser()})
	waitDone(t, done)

	state := st.State()
	assert.Equal(t, store.Anonymous, state.Auth.Status)
	assert.False(t, store.IsAuthenticated(state))
}

func TestSession_LogoutFromAuthenticated(t *testing.T) {
	st := store.New()
	verifier := newGatedVerifier("pw")
	session := NewSession(st, verifier)

	done := session.Login(context.Background(), "user@example.com", "pw")
	verifier.resolve("pw", verifyResult{user: demoUser()})
	waitDone(t, done)
	require.True(t, store.IsAuthenticated(st.State()))

	session.Logout()

	assert.Equal(t, store.Anonymous, st.State().Auth.Status)
}

func TestSession_RetryAfterFailure(t *testing.T) {
	st := store.New()
	verifier := newGatedVerifier("wrong", "right")
	session := NewSession(st, verifier)

	done := session.Login(context.Background(), "user@example.com", "wrong")
	verifier.resolve("wrong", verifyResult{err: ErrInvalidCredentials})
	waitDone(t, done)
	require.Equal(t, store.AuthFailed, st.State().Auth.Status)

	done = session.Login(context.Background(), "user@example.com", "right")
	assert.Equal(t, store.Authenticating, st.State().Auth.Status)

	verifier.resolve("right", verifyResult{user: demoUser()})
	waitDone(t, done)
	assert.True(t, store.IsAuthenticated(st.State()))
}
