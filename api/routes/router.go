package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/edutorres-dev/BellaVitta/api/controllers"
	"github.com/edutorres-dev/BellaVitta/api/middleware"
	authsvc "github.com/edutorres-dev/BellaVitta/internal/auth"
	cartsvc "github.com/edutorres-dev/BellaVitta/internal/cart"
	catalogsvc "github.com/edutorres-dev/BellaVitta/internal/catalog"
	customersvc "github.com/edutorres-dev/BellaVitta/internal/customers"
	financesvc "github.com/edutorres-dev/BellaVitta/internal/finance"
	ordersvc "github.com/edutorres-dev/BellaVitta/internal/orders"
	"github.com/edutorres-dev/BellaVitta/pkg/auth/session"
	"github.com/edutorres-dev/BellaVitta/pkg/config"
	"github.com/edutorres-dev/BellaVitta/pkg/logger"
	"github.com/edutorres-dev/BellaVitta/pkg/metrics"
	"github.com/edutorres-dev/BellaVitta/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	promRegistry *prometheus.Registry,
	sessionChecker session.AccessSessionChecker,
	authService authsvc.Service,
	catalogService catalogsvc.Service,
	cartService cartsvc.Service,
	ordersService ordersvc.Service,
	customersService customersvc.Service,
	financeService financesvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Get("/api/v1/catalog", controllers.CatalogMenu(catalogService, logg))

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.AuthRegister(authService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(authService, logg))
		r.Post("/refresh", controllers.AuthRefresh(authService, logg))
		r.Post("/logout", controllers.AuthLogout(authService, cfg.JWT, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionChecker, logg))

		r.Get("/ping", controllers.PrivatePing())

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, logg))
			r.Delete("/items", controllers.CartRemoveItem(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
		})

		r.Post("/checkout", controllers.Checkout(ordersService, authService, logg))

		r.Route("/me", func(r chi.Router) {
			r.Get("/", controllers.MeProfile(authService, logg))
			r.Patch("/contact", controllers.MeUpdateContact(authService, logg))
			r.Patch("/password", controllers.MeUpdatePassword(authService, logg))
			r.Delete("/", controllers.MeDeleteAccount(authService, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionChecker, logg))
		r.Use(middleware.RequireRole("admin", logg))

		r.Get("/ping", controllers.AdminPing())

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.AdminOrderList(ordersService, logg))
			r.Get("/{orderId}", controllers.AdminOrderDetail(ordersService, logg))
			r.Patch("/{orderId}/status", controllers.AdminOrderUpdateStatus(ordersService, logg))
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.AdminCustomerList(customersService, logg))
			r.Delete("/{customerId}", controllers.AdminCustomerDelete(customersService, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.AdminProductList(catalogService, logg))
			r.Post("/", controllers.AdminProductCreate(catalogService, logg))
			r.Get("/{productId}", controllers.AdminProductGet(catalogService, logg))
			r.Patch("/{productId}", controllers.AdminProductUpdate(catalogService, logg))
			r.Delete("/{productId}", controllers.AdminProductDelete(catalogService, logg))
		})

		r.Get("/finance/summary", controllers.FinanceSummary(financeService, logg))
	})

	return r
}
