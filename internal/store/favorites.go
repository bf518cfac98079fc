package store

import "github.com/tair/storefront/internal/catalog/domain"

// FavoritesState holds favorited products in insertion order, keyed by
// product ID. The zero value is an empty list.
type FavoritesState struct {
	items []domain.Product
}

// Count returns the number of favorited products
func (f FavoritesState) Count() int {
	return len(f.items)
}

// Contains reports whether a product with the given ID is favorited
func (f FavoritesState) Contains(productID int) bool {
	for _, p := range f.items {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Items returns a copy of the favorites in insertion order
func (f FavoritesState) Items() []domain.Product {
	out := make([]domain.Product, len(f.items))
	copy(out, f.items)
	return out
}

// reduceFavorites applies an action to the favorites state. Actions not
// addressed to favorites return the state unchanged. Every mutation builds
// a fresh slice so previously published snapshots stay valid.
func reduceFavorites(f FavoritesState, action Action) FavoritesState {
	switch a := action.(type) {
	case AddFavorite:
		if f.Contains(a.Product.ID) {
			return f
		}
		items := make([]domain.Product, len(f.items), len(f.items)+1)
		copy(items, f.items)
		return FavoritesState{items: append(items, a.Product)}

	case RemoveFavorite:
		if !f.Contains(a.ProductID) {
			return f
		}
		items := make([]domain.Product, 0, len(f.items)-1)
		for _, p := range f.items {
			if p.ID != a.ProductID {
				items = append(items, p)
			}
		}
		return FavoritesState{items: items}

	case ClearFavorites:
		return FavoritesState{}

	default:
		return f
	}
}
