package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tair/storefront/internal/app"
	"github.com/tair/storefront/internal/browse"
	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/usecase/command"
	"github.com/tair/storefront/internal/catalog/usecase/query"
	"github.com/tair/storefront/internal/store"
	"github.com/tair/storefront/pkg/config"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/tracing"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.ServiceName, cfg.LogLevel, cfg.IsDevelopment())

	// Initialize tracing
	tp, err := tracing.InitTracer(cfg.ServiceName, cfg.JaegerEndpoint)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Tracing disabled")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = tracing.Shutdown(ctx, tp)
		}()
	}

	// Prometheus metrics endpoint (ops only, optional)
	if cfg.MetricsAddr != "" {
		go func() {
			logger.Logger.Info().Str("addr", cfg.MetricsAddr).Msg("Metrics listener starting")
			if err := http.ListenAndServe(cfg.MetricsAddr, promhttp.Handler()); err != nil {
				logger.Logger.Error().Err(err).Msg("Metrics listener failed")
			}
		}()
	}

	application := app.NewDefault(cfg)

	// Log every state change the way a view layer would re-render
	unsubscribe := application.Store.Subscribe(func(s store.State) {
		logger.Logger.Debug().
			Int("favorites", store.FavoritesCount(s)).
			Bool("authenticated", store.IsAuthenticated(s)).
			Bool("dark_mode", store.IsDarkMode(s)).
			Msg("State updated")
	})
	defer unsubscribe()

	quit := make(chan struct{})
	go runShell(application, quit)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigs:
	case <-quit:
	}
	logger.Logger.Info().Msg("Shutting down")
}

func runShell(application *app.App, quit chan<- struct{}) {
	defer close(quit)

	cfg := application.Config
	list := browse.NewListController(application.Queries.List, cfg.PageSize)
	searcher := browse.NewSearcher(application.Queries.Search, cfg.SearchDebounce, cfg.PageSize,
		func(result *domain.ProductList) {
			fmt.Printf("found %d of %d\n", len(result.Products), result.Total)
			printProducts(result.Products)
			fmt.Print("> ")
		},
		func(err error) {
			fmt.Printf("search failed: %v\n> ", err)
		},
	)
	defer searcher.Close()

	fmt.Println("storefront shell — type 'help' for commands")
	fmt.Print("> ")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return
		}
		if line != "" {
			handleCommand(application, list, searcher, line)
		}
		fmt.Print("> ")
	}
}

func handleCommand(application *app.App, list *browse.ListController, searcher *browse.Searcher, line string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	args := strings.Fields(line)
	cmd, rest := args[0], args[1:]
	st := application.Store

	switch cmd {
	case "help":
		printHelp()

	case "list":
		if err := list.Load(ctx); err != nil {
			fmt.Printf("load failed: %v\n", err)
			return
		}
		printProducts(list.Products())
		fmt.Printf("showing %d of %d\n", len(list.Products()), list.Total())

	case "more":
		if err := list.LoadMore(ctx); err != nil {
			fmt.Printf("load failed: %v\n", err)
			return
		}
		printProducts(list.Products())
		fmt.Printf("showing %d of %d\n", len(list.Products()), list.Total())

	case "search":
		searcher.SetQuery(context.Background(), strings.Join(rest, " "))
		fmt.Println("searching...")

	case "show":
		id, ok := parseID(rest)
		if !ok {
			return
		}
		product, err := application.Queries.Get.Handle(ctx, query.GetProductQuery{ID: id})
		if err != nil {
			fmt.Printf("lookup failed: %v\n", err)
			return
		}
		printProductDetail(product)

	case "cat":
		if len(rest) < 1 {
			fmt.Println("usage: cat <slug>")
			return
		}
		result, err := application.Queries.ByCategory.Handle(ctx, query.ListByCategoryQuery{Category: rest[0]})
		if err != nil {
			fmt.Printf("lookup failed: %v\n", err)
			return
		}
		printProducts(result.Products)

	case "cats":
		categories, err := application.Queries.Categories.Handle(ctx)
		if err != nil {
			fmt.Printf("lookup failed: %v\n", err)
			return
		}
		for _, c := range categories {
			fmt.Printf("  %-24s %s\n", c.Slug, c.Name)
		}

	case "fav":
		id, ok := parseID(rest)
		if !ok {
			return
		}
		product, err := application.Queries.Get.Handle(ctx, query.GetProductQuery{ID: id})
		if err != nil {
			fmt.Printf("lookup failed: %v\n", err)
			return
		}
		st.ToggleFavorite(*product)
		if store.IsFavorite(st.State(), id) {
			fmt.Println("added to favorites")
		} else {
			fmt.Println("removed from favorites")
		}

	case "favs":
		snapshot := st.State()
		favorites := store.Favorites(snapshot)
		if len(favorites) == 0 {
			fmt.Println("no favorites yet")
			return
		}
		printProducts(favorites)

	case "clear":
		st.Dispatch(store.ClearFavorites{})
		fmt.Println("favorites cleared")

	case "login":
		if len(rest) != 2 {
			fmt.Println("usage: login <email> <password>")
			return
		}
		done := application.Session.Login(ctx, rest[0], rest[1])
		<-done
		snapshot := st.State()
		if user, ok := store.CurrentUser(snapshot); ok {
			fmt.Printf("welcome back, %s\n", user.Name)
		} else {
			fmt.Println("login failed")
		}

	case "logout":
		application.Session.Logout()
		fmt.Println("logged out")

	case "dark":
		st.Dispatch(store.ToggleDarkMode{})
		fmt.Printf("dark mode: %v\n", store.IsDarkMode(st.State()))

	case "create":
		if !requireAuth(st) {
			return
		}
		createProduct(ctx, application, strings.Join(rest, " "))

	case "delete":
		if !requireAuth(st) {
			return
		}
		id, ok := parseID(rest)
		if !ok {
			return
		}
		if err := application.Commands.Delete.Handle(ctx, command.DeleteProductCommand{ID: id}); err != nil {
			fmt.Printf("delete failed: %v\n", err)
			return
		}
		fmt.Println("deleted")

	default:
		fmt.Printf("unknown command %q — type 'help'\n", cmd)
	}
}

// createProduct parses "title; description; price; stock; brand; category"
func createProduct(ctx context.Context, application *app.App, input string) {
	parts := strings.Split(input, ";")
	if len(parts) != 6 {
		fmt.Println("usage: create <title>; <description>; <price>; <stock>; <brand>; <category>")
		return
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	price, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		fmt.Println("price must be a number")
		return
	}
	stock, err := strconv.Atoi(parts[3])
	if err != nil {
		fmt.Println("stock must be an integer")
		return
	}

	product, err := application.Commands.Create.Handle(ctx, command.CreateProductCommand{
		Title:       parts[0],
		Description: parts[1],
		Price:       price,
		Stock:       stock,
		Brand:       parts[4],
		Category:    parts[5],
	})
	if err != nil {
		fmt.Printf("create failed: %v\n", err)
		return
	}
	fmt.Printf("created product %d\n", product.ID)
}

// requireAuth gates mutating commands on an authenticated session. The
// store only advertises the flag; enforcement belongs to this surface.
func requireAuth(st *store.Store) bool {
	if !store.IsAuthenticated(st.State()) {
		fmt.Println("login required")
		return false
	}
	return true
}

func parseID(args []string) (int, bool) {
	if len(args) != 1 {
		fmt.Println("expected a product id")
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		fmt.Println("product id must be a positive integer")
		return 0, false
	}
	return id, true
}

func printProducts(products []domain.Product) {
	for _, p := range products {
		fmt.Printf("  #%-5d %-40s $%-8.2f %s\n", p.ID, p.Title, p.Price, p.Category)
	}
}

func printProductDetail(p *domain.Product) {
	fmt.Printf("#%d %s\n", p.ID, p.Title)
	fmt.Printf("  %s\n", p.Description)
	fmt.Printf("  brand: %s  category: %s\n", p.Brand, p.Category)
	fmt.Printf("  price: $%.2f (%.0f%% off -> $%.2f)  rating: %.1f  stock: %d\n",
		p.Price, p.DiscountPercentage, p.DiscountedPrice(), p.Rating, p.Stock)
}

func printHelp() {
	fmt.Println(`commands:
  list                 load the first page of products
  more                 load the next page (infinite scroll)
  search <q>           debounced product search
  show <id>            product detail
  cat <slug>           products in a category
  cats                 all categories
  fav <id>             toggle favorite
  favs                 list favorites
  clear                clear favorites
  login <email> <pw>   sign in
  logout               sign out
  dark                 toggle dark mode
  create <fields>      create product (title; description; price; stock; brand; category)
  delete <id>          delete product
  quit                 exit`)
}
