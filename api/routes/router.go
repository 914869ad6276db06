package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sweetlayers/sweetlayers-backend/api/controllers"
	"github.com/sweetlayers/sweetlayers-backend/api/middleware"
	cartsvc "github.com/sweetlayers/sweetlayers-backend/internal/cart"
	"github.com/sweetlayers/sweetlayers-backend/internal/catalog"
	checkoutsvc "github.com/sweetlayers/sweetlayers-backend/internal/checkout"
	ordersvc "github.com/sweetlayers/sweetlayers-backend/internal/orders"
	"github.com/sweetlayers/sweetlayers-backend/pkg/config"
	"github.com/sweetlayers/sweetlayers-backend/pkg/db"
	"github.com/sweetlayers/sweetlayers-backend/pkg/logger"
	"github.com/sweetlayers/sweetlayers-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	catalogService catalog.Service,
	cartManager *cartsvc.Manager,
	checkoutService checkoutsvc.Service,
	ordersService ordersvc.Service,
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
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cakes", func(r chi.Router) {
			r.Get("/", controllers.CakeList(catalogService, logg))
			r.Get("/featured", controllers.CakeFeatured(catalogService, logg))
			r.Get("/{cakeId}", controllers.CakeDetail(catalogService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(cartManager, logg))
				r.Delete("/", controllers.CartClear(cartManager, logg))
				r.Post("/items", controllers.CartAddItem(cartManager, checkoutService, logg))
				r.Patch("/items/{cakeId}", controllers.CartUpdateItem(cartManager, logg))
				r.Delete("/items/{cakeId}", controllers.CartRemoveItem(cartManager, logg))
			})

			r.Post("/checkout", controllers.Checkout(cartManager, checkoutService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrderList(ordersService, logg))
			r.Get("/{orderId}", controllers.OrderDetail(ordersService, logg))
			r.Post("/{orderId}/status", controllers.OrderTransition(ordersService, logg))
		})
	})

	return r
}
