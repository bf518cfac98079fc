package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoUser() User {
	return User{ID: "1", Email: "user@example.com", Name: "Demo User"}
}

func TestAuth_InitialStateIsAnonymous(t *testing.T) {
	s := New()
	state := s.State()

	assert.Equal(t, Anonymous, state.Auth.Status)
	assert.False(t, IsAuthenticated(state))
}

func TestAuth_LoginStartEntersAuthenticating(t *testing.T) {
	s := New()
	s.Dispatch(LoginStart{})

	state := s.State()
	assert.Equal(t, Authenticating, state.Auth.Status)
	assert.False(t, IsAuthenticated(state))
	assert.Nil(t, state.Auth.User)
}

func TestAuth_LoginFailure(t *testing.T) {
	s := New()
	s.Dispatch(LoginStart{})
	s.Dispatch(LoginFailure{})

	state := s.State()
	assert.Equal(t, AuthFailed, state.Auth.Status)
	assert.False(t, IsAuthenticated(state))
	assert.Nil(t, state.Auth.User)
}

func TestAuth_LoginSuccess(t *testing.T) {
	s := New()
	s.Dispatch(LoginStart{})
	s.Dispatch(LoginSuccess{User: demoUser()})

	state := s.State()
	assert.True(t, IsAuthenticated(state))

	user, ok := CurrentUser(state)
	require.True(t, ok)
	assert.Equal(t, "user@example.com", user.Email)
	assert.Equal(t, "Demo User", user.Name)
}

// Completions without an in-flight attempt are documented no-ops.
func TestAuth_CompletionWithoutStartIsNoOp(t *testing.T) {
	s := New()

	s.Dispatch(LoginSuccess{User: demoUser()})
	assert.Equal(t, Anonymous, s.State().Auth.Status)

	s.Dispatch(LoginFailure{})
	assert.Equal(t, Anonymous, s.State().Auth.Status)
}

func TestAuth_CompletionAfterLogoutIsNoOp(t *testing.T) {
	s := New()
	s.Dispatch(LoginStart{})
	s.Dispatch(Logout{})

	s.Dispatch(LoginSuccess{User: demoUser()})

	state := s.State()
	assert.Equal(t, Anonymous, state.Auth.Status)
	assert.False(t, IsAuthenticated(state))
}

func TestAuth_RetryAfterFailure(t *testing.T) {
	s := New()
	s.Dispatch(LoginStart{})
	s.Dispatch(LoginFailure{})

	s.Dispatch(LoginStart{})
	assert.Equal(t, Authenticating, s.State().Auth.Status)

	s.Dispatch(LoginSuccess{User: demoUser()})
	assert.True(t, IsAuthenticated(s.State()))
}

func TestAuth_LogoutFromEveryState(t *testing.T) {
	setups := map[string]func(*Store){
		"anonymous":      func(*Store) {},
		"authenticating": func(s *Store) { s.Dispatch(LoginStart{}) },
		"authenticated": func(s *Store) {
			s.Dispatch(LoginStart{})
			s.Dispatch(LoginSuccess{User: demoUser()})
		},
		"failed": func(s *Store) {
			s.Dispatch(LoginStart{})
			s.Dispatch(LoginFailure{})
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			s := New()
			setup(s)

			s.Dispatch(Logout{})

			state := s.State()
			assert.Equal(t, Anonymous, state.Auth.Status)
			assert.False(t, IsAuthenticated(state))
			assert.Nil(t, state.Auth.User)
		})
	}
}

// isAuthenticated must hold exactly when the status is Authenticated.
func TestAuth_AuthenticatedIffUserHeld(t *testing.T) {
	s := New()
	s.Dispatch(LoginStart{})
	s.Dispatch(LoginSuccess{User: demoUser()})

	state := s.State()
	assert.Equal(t, Authenticated, state.Auth.Status)
	assert.NotNil(t, state.Auth.User)

	s.Dispatch(Logout{})
	state = s.State()
	assert.NotEqual(t, Authenticated, state.Auth.Status)
	assert.Nil(t, state.Auth.User)

	_, ok := CurrentUser(state)
	assert.False(t, ok)
}

func TestAuth_LoginStartClearsPreviousUser(t *testing.T) {
	s := New()
	s.Dispatch(LoginStart{})
	s.Dispatch(LoginSuccess{User: demoUser()})

	s.Dispatch(LoginStart{})

	state := s.State()
	assert.Equal(t, Authenticating, state.Auth.Status)
	assert.Nil(t, state.Auth.User)
}
