package app

import (
	"github.com/tair/storefront/internal/auth"
	"github.com/tair/storefront/internal/catalog/client"
	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/usecase/command"
	"github.com/tair/storefront/internal/catalog/usecase/query"
	"github.com/tair/storefront/internal/store"
	"github.com/tair/storefront/pkg/config"
)

// CommandHandlers holds all catalog command handlers
type CommandHandlers struct {
	Create *command.CreateProductHandler
	Update *command.UpdateProductHandler
	Delete *command.DeleteProductHandler
}

// QueryHandlers holds all catalog query handlers
type QueryHandlers struct {
	List       *query.ListProductsHandler
	Get        *query.GetProductHandler
	Search     *query.SearchProductsHandler
	ByCategory *query.ListByCategoryHandler
	Categories *query.ListCategoriesHandler
}

// App is the application context: the state store, the catalog handlers,
// and the login session, constructed once per process and injected into
// whatever surface drives it.
type App struct {
	Config   *config.Config
	Store    *store.Store
	Commands *CommandHandlers
	Queries  *QueryHandlers
	Session  *auth.Session
}

// New builds the application graph on top of the given collaborators
func New(cfg *config.Config, catalog domain.CatalogService, verifier auth.Verifier) *App {
	st := store.New()

	return &App{
		Config: cfg,
		Store:  st,
		Commands: &CommandHandlers{
			Create: command.NewCreateProductHandler(catalog),
			Update: command.NewUpdateProductHandler(catalog),
			Delete: command.NewDeleteProductHandler(catalog),
		},
		Queries: &QueryHandlers{
			List:       query.NewListProductsHandler(catalog),
			Get:        query.NewGetProductHandler(catalog),
			Search:     query.NewSearchProductsHandler(catalog),
			ByCategory: query.NewListByCategoryHandler(catalog),
			Categories: query.NewListCategoriesHandler(catalog),
		},
		Session: auth.NewSession(st, verifier),
	}
}

// NewDefault builds the application with its production collaborators:
// the HTTP catalog client and the HTTP identity provider.
func NewDefault(cfg *config.Config) *App {
	catalog := client.NewHTTPCatalog(cfg.ProductAPIURL, cfg.HTTPTimeout)
	verifier := auth.NewHTTPVerifier(cfg.AuthAPIURL, cfg.HTTPTimeout, nil)
	return New(cfg, catalog, verifier)
}
