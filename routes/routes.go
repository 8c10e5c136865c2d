package routes

import (
	"net/http"

	"creamery/admin"
	"creamery/cart"
	"creamery/checkout"
	"creamery/contact"
	"creamery/drafts"
	"creamery/localstore"
	"creamery/notify"
	"creamery/orders"
	"creamery/products"
	"creamery/ratelim"
	"creamery/session"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/*filepath", http.Dir("static"))
}

func AddSessionRoutes(router *httprouter.Router) {
	router.GET("/api/session", session.Issue)
}

func AddProductRoutes(router *httprouter.Router) {
	router.GET("/api/products", products.GetProducts)
	// httprouter forbids mixing static and :id segments, so the derived
	// views live one level up.
	router.GET("/api/bestseller", products.GetBestSeller)
	router.GET("/api/signature", products.GetSignature)
	router.GET("/api/products/:id", products.GetProduct)
	router.GET("/api/products/:id/image", products.GetProductImage)
}

func AddCartRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, mgr *cart.Manager) {
	router.GET("/api/cart", session.Require(cart.GetCart(mgr)))
	router.POST("/api/cart/add", rl.Limit(session.Require(cart.AddToCart(mgr))))
	router.POST("/api/cart/remove", rl.Limit(session.Require(cart.RemoveFromCart(mgr))))
	router.POST("/api/cart/delete", rl.Limit(session.Require(cart.DeleteFromCart(mgr))))
}

func AddDraftRoutes(router *httprouter.Router, store localstore.Store) {
	router.GET("/api/drafts/:form", session.Require(drafts.GetDraft(store)))
	router.PUT("/api/drafts/:form", session.Require(drafts.SaveDraft(store)))
	router.DELETE("/api/drafts/:form", session.Require(drafts.ClearDraft(store)))
}

func AddCheckoutRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, sub *checkout.Submitter) {
	router.POST("/api/checkout", rl.Limit(session.Require(checkout.Submit(sub))))
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, carts *cart.Manager) {
	router.POST("/api/order", rl.Limit(session.Optional(orders.PlaceOrder(carts))))
	router.GET("/api/order/:orderid", orders.GetOrder)
	router.GET("/api/order/:orderid/receipt", orders.PrintReceipt)
}

func AddContactRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/contact", rl.Limit(contact.CreateMessage))
}

func AddAdminRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, hub *notify.Hub) {
	router.POST("/api/admin/reseed", rl.Limit(admin.Reseed(hub)))
}

func AddNotifyRoutes(router *httprouter.Router, hub *notify.Hub) {
	router.GET("/ws/updates", hub.Subscribe)
}
