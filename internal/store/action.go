package store

import "github.com/tair/storefront/internal/catalog/domain"

// Action is the closed set of state transitions the store accepts.
// The unexported marker keeps the union sealed so reducers can match
// exhaustively over a known set of kinds.
type Action interface {
	kind() string
}

// AddFavorite inserts a product into favorites; a no-op if already present
type AddFavorite struct {
	Product domain.Product
}

// RemoveFavorite deletes the favorite with the given product ID if present
type RemoveFavorite struct {
	ProductID int
}

// ClearFavorites empties the favorites list unconditionally
type ClearFavorites struct{}

// LoginStart marks the beginning of a login attempt
type LoginStart struct{}

// LoginSuccess stores the sanitized user of a completed login attempt.
// Ignored unless a login attempt is in flight.
type LoginSuccess struct {
	User User
}

// LoginFailure marks a failed login attempt.
// Ignored unless a login attempt is in flight.
type LoginFailure struct{}

// Logout resets the session to anonymous from any state
type Logout struct{}

// ToggleDarkMode flips the dark mode preference
type ToggleDarkMode struct{}

// SetLoading sets the global busy flag
type SetLoading struct {
	Loading bool
}

func (AddFavorite) kind() string    { return "add_favorite" }
func (RemoveFavorite) kind() string { return "remove_favorite" }
func (ClearFavorites) kind() string { return "clear_favorites" }
func (LoginStart) kind() string     { return "login_start" }
func (LoginSuccess) kind() string   { return "login_success" }
func (LoginFailure) kind() string   { return "login_failure" }
func (Logout) kind() string         { return "logout" }
func (ToggleDarkMode) kind() string { return "toggle_dark_mode" }
func (SetLoading) kind() string     { return "set_loading" }
