package store

// AuthStatus enumerates the session states
type AuthStatus int

const (
	// Anonymous is the initial state: no session, no attempt in flight
	Anonymous AuthStatus = iota
	// Authenticating means a login attempt is in flight
	Authenticating
	// Authenticated means a sanitized user record is held
	Authenticated
	// AuthFailed means the last login attempt was rejected
	AuthFailed
)

// String returns the status name
func (s AuthStatus) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case AuthFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// User is a sanitized user record. It must never carry credential material;
// the login flow strips secrets before the record reaches the store.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthState holds the session. User is non-nil exactly when Status is
// Authenticated.
type AuthState struct {
	Status AuthStatus
	User   *User
}

// IsAuthenticated reports whether a user session is held
func (a AuthState) IsAuthenticated() bool {
	return a.Status == Authenticated
}

// reduceAuth applies an action to the session state. LoginSuccess and
// LoginFailure without an in-flight attempt are deliberate no-ops: stale
// completions from a superseded attempt must be droppable.
func reduceAuth(a AuthState, action Action) AuthState {
	switch act := action.(type) {
	case LoginStart:
		return AuthState{Status: Authenticating}

	case LoginSuccess:
		if a.Status != Authenticating {
			return a
		}
		user := act.User
		return AuthState{Status: Authenticated, User: &user}

	case LoginFailure:
		if a.Status != Authenticating {
			return a
		}
		return AuthState{Status: AuthFailed}

	case Logout:
		// Defensive reset: legal from every state
		return AuthState{Status: Anonymous}

	default:
		return a
	}
}
