package useragent

import (
	"errors"
	"net/http"
	"slices"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultCacheSize bounds the number of distinct agents whose facts the
// middleware keeps.
const DefaultCacheSize = 1024

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	cacheSize  int
	cacheTTL   time.Duration
	assume     Assumptions
	registerer prometheus.Registerer
}

// WithCacheSize sets how many agents are memoised. Zero or less disables
// the cache.
func WithCacheSize(n int) MiddlewareOption {
	return func(c *middlewareConfig) { c.cacheSize = n }
}

// WithCacheTTL expires memoised facts after ttl. Zero keeps them until
// evicted.
func WithCacheTTL(ttl time.Duration) MiddlewareOption {
	return func(c *middlewareConfig) { c.cacheTTL = ttl }
}

// WithMiddlewareAssumptions applies assumptions to every request.
func WithMiddlewareAssumptions(a Assumptions) MiddlewareOption {
	return func(c *middlewareConfig) { c.assume = a }
}

// WithRegisterer counts requests per browser, platform and device in the
// useragent_requests_total counter of reg.
func WithRegisterer(reg prometheus.Registerer) MiddlewareOption {
	return func(c *middlewareConfig) { c.registerer = reg }
}

// Middleware detects the facts of every request's agent and stores them in
// the request context, see FromContext.
func Middleware(opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	var cache *lru.LRU[string, Facts]
	if cfg.cacheSize > 0 {
		cache = lru.NewLRU[string, Facts](cfg.cacheSize, nil, cfg.cacheTTL)
	}

	var requests *prometheus.CounterVec
	if cfg.registerer != nil {
		requests = registerRequestsCounter(cfg.registerer)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nav := RequestNavigator(r)
			key := nav.UserAgent() + "\x00" + nav.Platform()

			facts, ok := Facts{}, false
			if cache != nil {
				facts, ok = cache.Get(key)
			}
			if !ok {
				facts = New(WithNavigator(nav), WithAssumptions(cfg.assume)).Snapshot()
				if cache != nil {
					cache.Add(key, facts)
				}
			}

			if requests != nil {
				requests.WithLabelValues(string(facts.Browser), string(facts.Platform), string(facts.Device)).Inc()
			}

			// Handlers get their own tuples so the cached entry stays intact.
			facts.Tuples = slices.Clone(facts.Tuples)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), facts)))
		})
	}
}

// registerRequestsCounter registers the request counter, reusing an
// existing one so several middlewares can share a registry. Any other
// registration error is a programming error and panics.
func registerRequestsCounter(reg prometheus.Registerer) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "useragent_requests_total",
		Help: "HTTP requests by detected browser, platform and device (Counter).",
	}, []string{"browser", "platform", "device"})

	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}
