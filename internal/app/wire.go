//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/tair/storefront/internal/auth"
	"github.com/tair/storefront/internal/catalog/client"
	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/usecase/command"
	"github.com/tair/storefront/internal/catalog/usecase/query"
	"github.com/tair/storefront/internal/store"
	"github.com/tair/storefront/pkg/config"
)

// ProvideCatalogService provides the remote catalog client
func ProvideCatalogService(cfg *config.Config) domain.CatalogService {
	return client.NewHTTPCatalog(cfg.ProductAPIURL, cfg.HTTPTimeout)
}

// ProvideVerifier provides the identity provider client
func ProvideVerifier(cfg *config.Config) auth.Verifier {
	return auth.NewHTTPVerifier(cfg.AuthAPIURL, cfg.HTTPTimeout, nil)
}

// ProvideStore provides the application state store
func ProvideStore() *store.Store {
	return store.New()
}

// ProvideSession provides the login session manager
func ProvideSession(st *store.Store, verifier auth.Verifier) *auth.Session {
	return auth.NewSession(st, verifier)
}

// ProvideCommandHandlers provides all catalog command handlers
func ProvideCommandHandlers(catalog domain.CatalogService) *CommandHandlers {
	return &CommandHandlers{
		Create: command.NewCreateProductHandler(catalog),
		Update: command.NewUpdateProductHandler(catalog),
		Delete: command.NewDeleteProductHandler(catalog),
	}
}

// ProvideQueryHandlers provides all catalog query handlers
func ProvideQueryHandlers(catalog domain.CatalogService) *QueryHandlers {
	return &QueryHandlers{
		List:       query.NewListProductsHandler(catalog),
		Get:        query.NewGetProductHandler(catalog),
		Search:     query.NewSearchProductsHandler(catalog),
		ByCategory: query.NewListByCategoryHandler(catalog),
		Categories: query.NewListCategoriesHandler(catalog),
	}
}

// ProvideApp assembles the application context
func ProvideApp(cfg *config.Config, st *store.Store, commands *CommandHandlers,
	queries *QueryHandlers, session *auth.Session) *App {
	return &App{
		Config:   cfg,
		Store:    st,
		Commands: commands,
		Queries:  queries,
		Session:  session,
	}
}

// Wire sets
var CollaboratorSet = wire.NewSet(
	ProvideCatalogService,
	ProvideVerifier,
)

var StoreSet = wire.NewSet(
	ProvideStore,
	ProvideSession,
)

var HandlerSet = wire.NewSet(
	ProvideCommandHandlers,
	ProvideQueryHandlers,
)

// InitializeApp initializes the application with all dependencies
func InitializeApp(cfg *config.Config) (*App, error) {
	wire.Build(
		CollaboratorSet,
		StoreSet,
		HandlerSet,
		ProvideApp,
	)
	return nil, nil
}
