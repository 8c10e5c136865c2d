package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creamery/cart"
	"creamery/checkout"
	"creamery/localstore"
	"creamery/notify"
	"creamery/orders"
	"creamery/products"
	"creamery/ratelim"
	"creamery/rdx"
	"creamery/routes"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, duration)
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(rateLimiter *ratelim.RateLimiter, store localstore.Store, carts *cart.Manager, sub *checkout.Submitter, hub *notify.Hub) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddStaticRoutes(router)
	routes.AddSessionRoutes(router)
	routes.AddProductRoutes(router)
	routes.AddCartRoutes(router, rateLimiter, carts)
	routes.AddDraftRoutes(router, store)
	routes.AddCheckoutRoutes(router, rateLimiter, sub)
	routes.AddOrderRoutes(router, rateLimiter, carts)
	routes.AddContactRoutes(router, rateLimiter)
	routes.AddAdminRoutes(router, rateLimiter, hub)
	routes.AddNotifyRoutes(router, hub)

	return router
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":3000"
	} else if port[0] != ':' {
		port = ":" + port
	}

	// Seed the catalog on first start.
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := products.SeedIfEmpty(seedCtx); err != nil {
		log.Fatalf("❌ Failed to seed products: %v", err)
	}
	cancelSeed()

	hub := notify.NewHub()
	store := localstore.NewRedisStore(rdx.Conn)
	carts := cart.NewManager(store, hub)
	rateLimiter := ratelim.NewRateLimiter()

	// Orders are placed in-process unless a separate order backend is
	// configured.
	var transport checkout.Transport = orders.NewLocalTransport()
	if base := os.Getenv("ORDER_BACKEND_URL"); base != "" {
		transport = checkout.NewHTTPTransport(base, os.Getenv("ORDER_BACKEND_TOKEN"))
	}
	submitter := checkout.NewSubmitter(carts, store, transport)

	router := setupRouter(rateLimiter, store, carts, submitter, hub)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// on shutdown: close subscriptions, cleanup
	server.RegisterOnShutdown(func() {
		log.Println("🛑 Closing update subscriptions...")
		hub.Stop()
	})

	go func() {
		log.Printf("🚀 Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}
