package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/rogerio-castellano/products-api/docs"
	"github.com/rogerio-castellano/products-api/internal/http/handlers"
	mw "github.com/rogerio-castellano/products-api/internal/http/middleware"
	rl "github.com/rogerio-castellano/products-api/internal/http/rate_limiter"
	"github.com/rogerio-castellano/products-api/internal/repo"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Deps struct {
	Products repo.ProductRepository
	// DB backs the health check; nil reports healthy.
	DB     handlers.Pinger
	Logger zerolog.Logger
	// Limiter is optional; nil disables rate limiting.
	Limiter     rl.Limiter
	CORSOrigins []string
	// TrustProxyHeaders rewrites RemoteAddr from X-Forwarded-For / X-Real-IP.
	// Off, clients are identified by the socket peer address.
	TrustProxyHeaders bool
}

func NewRouter(d Deps) http.Handler {
	origins := d.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	if d.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(mw.RequestLogger(d.Logger))
	r.Use(mw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
	}))

	r.Get("/health", handlers.HealthHandler(d.DB))

	r.Get("/api-docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api-docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/api-docs/*", httpSwagger.Handler(httpSwagger.URL("/api-docs/doc.json")))

	products := handlers.NewProductHandler(d.Products)
	r.Group(func(r chi.Router) {
		if d.Limiter != nil {
			r.Use(rl.Middleware(d.Limiter))
		}
		r.Get("/products", products.GetProducts)
		r.Post("/products", products.CreateProduct)
		r.Get("/products/{id}", products.GetProductByID)
		r.Put("/products/{id}", products.UpdateProduct)
		r.Delete("/products/{id}", products.DeleteProduct)
	})

	return r
}
