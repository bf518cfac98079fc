package store

import "github.com/tair/storefront/internal/catalog/domain"

// Selectors are pure projections over a snapshot. Given equal snapshots
// they return equal results, so callers can skip downstream work when
// nothing changed.

// FavoritesCount returns the number of favorited products
func FavoritesCount(s State) int {
	return s.Favorites.Count()
}

// IsFavorite reports whether the product is favorited
func IsFavorite(s State, productID int) bool {
	return s.Favorites.Contains(productID)
}

// Favorites returns the favorited products in insertion order
func Favorites(s State) []domain.Product {
	return s.Favorites.Items()
}

// IsAuthenticated reports whether a user session is held
func IsAuthenticated(s State) bool {
	return s.Auth.IsAuthenticated()
}

// CurrentUser returns the authenticated user, if any
func CurrentUser(s State) (User, bool) {
	if s.Auth.User == nil {
		return User{}, false
	}
	return *s.Auth.User, true
}

// IsDarkMode reports whether dark mode is enabled
func IsDarkMode(s State) bool {
	return s.UI.DarkMode
}
