package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/techstore-mx/techstore-backend/api/controllers"
	"github.com/techstore-mx/techstore-backend/api/middleware"
	authsvc "github.com/techstore-mx/techstore-backend/internal/auth"
	cartstore "github.com/techstore-mx/techstore-backend/internal/cart"
	categorysvc "github.com/techstore-mx/techstore-backend/internal/categories"
	ordersvc "github.com/techstore-mx/techstore-backend/internal/orders"
	productsvc "github.com/techstore-mx/techstore-backend/internal/products"
	wishliststore "github.com/techstore-mx/techstore-backend/internal/wishlist"
	"github.com/techstore-mx/techstore-backend/pkg/config"
	"github.com/techstore-mx/techstore-backend/pkg/logger"
	"github.com/techstore-mx/techstore-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	pingers map[string]controllers.Pinger,
	productService productsvc.Service,
	categoryService categorysvc.Service,
	orderService ordersvc.Service,
	authService authsvc.Service,
	cart *cartstore.Store,
	wishlist *wishliststore.Store,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, pingers))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Session(logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(productService, logg))
			r.Post("/", controllers.CreateProduct(productService, logg))
			r.Put("/", controllers.UpdateProductByBody(productService, logg))
			r.Delete("/", controllers.DeleteProductByQuery(productService, logg))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", controllers.GetProduct(productService, logg))
				r.Put("/", controllers.UpdateProduct(productService, logg))
				r.Delete("/", controllers.DeleteProduct(productService, logg))
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.ListCategories(categoryService, logg))
			r.Post("/", controllers.CreateCategory(categoryService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(orderService, logg))
			r.Post("/", controllers.CreateOrder(orderService, logg))
			r.Put("/", controllers.UpdateOrder(orderService, logg))
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Post("/filter", controllers.FilterCatalog(productService, logg))
			r.Get("/stats", controllers.CatalogStats(productService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(cart, logg))
			r.Delete("/", controllers.ClearCart(cart, logg))
			r.Get("/summary", controllers.CartSummary(cart, logg))
			r.Post("/items", controllers.AddCartItem(cart, productService, logg))
			r.Route("/items/{productId}", func(r chi.Router) {
				r.Put("/", controllers.UpdateCartItem(cart, logg))
				r.Delete("/", controllers.RemoveCartItem(cart, logg))
			})
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.GetWishlist(wishlist, logg))
			r.Post("/toggle", controllers.ToggleWishlist(wishlist, productService, logg))
			r.Delete("/{productId}", controllers.RemoveWishlistItem(wishlist, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", controllers.Register(authService, logg))
			r.Post("/login", controllers.Login(authService, logg))
			r.Post("/logout", controllers.Logout(authService, logg))
		})
	})

	return r
}
