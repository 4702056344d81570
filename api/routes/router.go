package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/restaurantelilica/cardapio-backend/api/controllers"
	"github.com/restaurantelilica/cardapio-backend/api/middleware"
	"github.com/restaurantelilica/cardapio-backend/pkg/config"
	"github.com/restaurantelilica/cardapio-backend/pkg/logger"
	"github.com/restaurantelilica/cardapio-backend/pkg/redis"
)

// Services bundles everything the router wires into controllers.
type Services struct {
	Menu       controllers.MenuService
	SiteConfig controllers.SiteConfigService
	Cart       controllers.CartService
	Leads      controllers.LeadService
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisPinger redis.Pinger,
	registry *prometheus.Registry,
	services Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisPinger))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/menu", controllers.MenuFetch(services.Menu, logg))
		r.Get("/menu/items/{itemId}", controllers.MenuItemDetail(services.Menu, logg))
		r.Get("/config", controllers.SiteConfigFetch(services.SiteConfig, logg))
		r.Post("/leads", controllers.LeadCreate(services.Leads, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.CartSession(cfg.Cart, logg))
			r.Get("/", controllers.CartFetch(services.Cart, services.SiteConfig, logg))
			r.Delete("/", controllers.CartClear(services.Cart, services.SiteConfig, logg))
			r.Post("/items", controllers.CartAddItem(services.Cart, services.Menu, services.SiteConfig, logg))
			r.Patch("/items/{itemId}", controllers.CartSetQuantity(services.Cart, services.SiteConfig, logg))
			r.Delete("/items/{itemId}", controllers.CartRemoveItem(services.Cart, services.SiteConfig, logg))
			r.Post("/toggle", controllers.CartToggle(services.Cart, services.SiteConfig, logg))
		})
	})

	return r
}
