package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bookeasy/admin-service/internal/api/handlers"
	"github.com/bookeasy/admin-service/internal/domain"
	"github.com/bookeasy/admin-service/pkg/metrics"
)

// ShopDomainHeader carries the storefront domain identifying the
// tenant on every admin request.
const ShopDomainHeader = "X-Shop-Domain"

type shopKey struct{}

// ShopResolver turns a storefront domain into the tenant record,
// creating it on first contact.
type ShopResolver interface {
	ResolveByDomain(ctx context.Context, shopDomain string) (*domain.Shop, error)
}

// Logger is the logging surface the middleware needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ShopAuth resolves the tenant from the shop domain header and puts
// it on the request context. Requests without the header are
// rejected.
func ShopAuth(resolver ShopResolver, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			shopDomain := r.Header.Get(ShopDomainHeader)
			if shopDomain == "" {
				logger.Warn("%s %s - missing %s header", r.Method, r.URL.Path, ShopDomainHeader)
				handlers.RespondForbidden(w, "shop domain header is required")
				return
			}

			shop, err := resolver.ResolveByDomain(r.Context(), shopDomain)
			if err != nil {
				logger.Error("%s %s - failed to resolve shop %q: %v", r.Method, r.URL.Path, shopDomain, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithShop(r.Context(), shop)))
		})
	}
}

// WithShop returns a context carrying the resolved tenant
func WithShop(ctx context.Context, shop *domain.Shop) context.Context {
	return context.WithValue(ctx, shopKey{}, shop)
}

// ShopFromContext returns the tenant resolved by ShopAuth
func ShopFromContext(ctx context.Context) (*domain.Shop, bool) {
	shop, ok := ctx.Value(shopKey{}).(*domain.Shop)
	return shop, ok
}

// statusRecorder captures the response status for metrics
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware records request count and latency per route
func MetricsMiddleware(collector *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tmpl, err := current.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}
			collector.ObserveRequest(r.Method, route, rec.status, time.Since(start))
		})
	}
}
