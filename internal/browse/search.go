package browse

import (
	"context"
	"sync"
	"time"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/usecase/query"
	"github.com/tair/storefront/pkg/logger"
)

// Searcher debounces product search input. Each keystroke calls SetQuery;
// only after the debounce window elapses without a newer query does the
// search run. Results from superseded queries are discarded.
type Searcher struct {
	handler  *query.SearchProductsHandler
	debounce time.Duration
	limit    int

	// onResults receives the result list for the most recent query.
	// It runs on the search goroutine.
	onResults func(*domain.ProductList)
	onError   func(error)

	mu    sync.Mutex
	timer *time.Timer
	gen   int
}

// NewSearcher creates a debounced searcher delivering results to onResults
func NewSearcher(handler *query.SearchProductsHandler, debounce time.Duration, limit int,
	onResults func(*domain.ProductList), onError func(error)) *Searcher {
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}
	return &Searcher{
		handler:   handler,
		debounce:  debounce,
		limit:     limit,
		onResults: onResults,
		onError:   onError,
	}
}

// SetQuery schedules a search for q, superseding any pending or in-flight
// query. An empty query resolves immediately with an empty result.
func (s *Searcher) SetQuery(ctx context.Context, q string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	gen := s.gen
	if s.timer != nil {
		s.timer.Stop()
	}

	s.timer = time.AfterFunc(s.debounce, func() {
		s.run(ctx, gen, q)
	})
}

func (s *Searcher) run(ctx context.Context, gen int, q string) {
	list, err := s.handler.Handle(ctx, query.SearchProductsQuery{Query: q, Limit: s.limit})

	s.mu.Lock()
	stale := gen != s.gen
	s.mu.Unlock()
	if stale {
		logger.Debug(ctx).Str("query", q).Msg("Discarding stale search result")
		return
	}

	if err != nil {
		if s.onError != nil {
			s.onError(err)
		}
		return
	}
	if s.onResults != nil {
		s.onResults(list)
	}
}

// Close cancels any pending search
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
