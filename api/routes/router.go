package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quickbite-app/quickbite-backend/api/controllers"
	"github.com/quickbite-app/quickbite-backend/api/middleware"
	"github.com/quickbite-app/quickbite-backend/internal/catalog"
	checkoutsvc "github.com/quickbite-app/quickbite-backend/internal/checkout"
	"github.com/quickbite-app/quickbite-backend/internal/orders"
	"github.com/quickbite-app/quickbite-backend/internal/sessions"
	"github.com/quickbite-app/quickbite-backend/pkg/config"
	"github.com/quickbite-app/quickbite-backend/pkg/logger"
	"github.com/quickbite-app/quickbite-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	menu catalog.Repository,
	registry *sessions.Registry,
	checkoutService checkoutsvc.Service,
	ordersRepo orders.Repository,
	httpMetrics *metrics.HTTPMetrics,
	promGatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if promGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/menu", func(r chi.Router) {
			r.Get("/categories", controllers.MenuListCategories(menu, logg))
			r.Get("/items", controllers.MenuListItems(menu, logg))
			r.Get("/items/{itemID}", controllers.MenuGetItem(menu, logg))
		})

		r.Get("/promotions", controllers.ListPromotions(menu, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(cfg.Session, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(registry, logg))
				r.Delete("/", controllers.CartClear(registry, logg))
				r.Route("/items", func(r chi.Router) {
					r.Post("/", controllers.CartAddItem(registry, menu, logg))
					r.Patch("/{lineItemID}", controllers.CartUpdateItem(registry, logg))
					r.Delete("/{lineItemID}", controllers.CartRemoveItem(registry, logg))
				})
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Post("/quote", controllers.CheckoutQuote(checkoutService, registry, logg))
				r.Post("/", controllers.CheckoutPlaceOrder(checkoutService, registry, logg))
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersList(ordersRepo, logg))
			r.Get("/{orderID}", controllers.OrdersGet(ordersRepo, logg))
		})
	})

	return r
}
