package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/auth"
	"github.com/tair/storefront/internal/store"
	"github.com/tair/storefront/pkg/config"
)

func TestNew_WiresTheFullGraph(t *testing.T) {
	cfg := config.Load()

	verifier := auth.NewStaticVerifier(nil)
	application := New(cfg, nil, verifier)

	require.NotNil(t, application.Store)
	require.NotNil(t, application.Session)
	require.NotNil(t, application.Commands)
	require.NotNil(t, application.Queries)

	assert.NotNil(t, application.Commands.Create)
	assert.NotNil(t, application.Commands.Update)
	assert.NotNil(t, application.Commands.Delete)
	assert.NotNil(t, application.Queries.List)
	assert.NotNil(t, application.Queries.Get)
	assert.NotNil(t, application.Queries.Search)
	assert.NotNil(t, application.Queries.ByCategory)
	assert.NotNil(t, application.Queries.Categories)

	// The store starts empty and anonymous
	state := application.Store.State()
	assert.Equal(t, 0, store.FavoritesCount(state))
	assert.False(t, store.IsAuthenticated(state))
	assert.False(t, store.IsDarkMode(state))
}
