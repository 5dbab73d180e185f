package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/projecthelena/greeter/internal/clock"
	"github.com/projecthelena/greeter/internal/config"
	_ "github.com/projecthelena/greeter/internal/docs"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/time/rate"
)

type Router struct {
	*chi.Mux
	limiter *IPRateLimiter
}

// SecurityHeaders middleware adds essential security headers to all responses.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// NewRouter builds the route table. metrics may be nil, in which case no
// /metrics endpoint is mounted and requests are not observed.
func NewRouter(cfg *config.Config, clk clock.Clock, metrics *Metrics, logger *log.Logger) *Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logger, NoColor: true}))

	// Metrics wrap Recoverer so a recovered panic is counted as its 500.
	if metrics != nil {
		r.Use(metrics.Middleware)
	}
	r.Use(middleware.Recoverer)

	// Forwarding headers are only honoured behind a trusted proxy, otherwise
	// clients could pick their own rate limit bucket.
	if cfg.TrustProxy {
		r.Use(middleware.RealIP)
	}

	r.Use(SecurityHeaders)

	// Greetings are unlimited unless RATE_LIMIT opts in.
	var limiter *IPRateLimiter
	if cfg.RateLimit > 0 {
		limiter = NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}
	greetH := NewGreetingHandler(clk)

	// Probes and scraping stay outside the limiter.
	r.Get("/healthz", Healthz(clk))
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}
	if cfg.DocsEnabled {
		r.Get("/docs/*", httpSwagger.Handler(
			httpSwagger.URL("/docs/doc.json"),
		))
	}

	r.Group(func(g chi.Router) {
		if limiter != nil {
			g.Use(RateLimitMiddleware(limiter))
		}
		g.Get("/", greetH.Hello)
		g.Get("/info", greetH.Info)
		g.Get("/about", greetH.About)
	})

	return &Router{Mux: r, limiter: limiter}
}

// Close releases the background work owned by the router.
func (rt *Router) Close() {
	if rt.limiter != nil {
		rt.limiter.Close()
	}
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
