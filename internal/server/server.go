package server

import (
	"net/http"

	"agriconnect-be/internal/cart"
	"agriconnect-be/internal/chat"
	"agriconnect-be/internal/logger"
	"agriconnect-be/internal/metrics"
	"agriconnect-be/internal/middleware"
	"agriconnect-be/internal/order"
	"agriconnect-be/internal/product"
	"agriconnect-be/internal/tracking"
	"agriconnect-be/internal/user"
	"agriconnect-be/internal/utils"
	"agriconnect-be/internal/vendor"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Server wires the domain services behind the HTTP API.
type Server struct {
	users     user.Service
	products  product.Service
	carts     cart.Service
	orders    order.Service
	vendors   vendor.Service
	chats     chat.Service
	simulator *tracking.Simulator
}

func NewServer(
	users user.Service,
	products product.Service,
	carts cart.Service,
	orders order.Service,
	vendors vendor.Service,
	chats chat.Service,
	simulator *tracking.Simulator,
) *Server {
	return &Server{
		users:     users,
		products:  products,
		carts:     carts,
		orders:    orders,
		vendors:   vendors,
		chats:     chats,
		simulator: simulator,
	}
}

// Router builds the full route table with the middleware chain:
// request id -> logging -> auth -> rate limit -> session. Auth runs before
// the limiter so authenticated traffic is bucketed per user, not per IP.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.AuthMiddleware)
	r.Use(middleware.RateLimitMiddleware)
	r.Use(SessionMiddleware)

	r.HandleFunc("/api/auth/register", s.handleRegister).Methods("POST")
	r.HandleFunc("/api/auth/login", s.handleLogin).Methods("POST")

	r.HandleFunc("/api/products", s.handleListProducts).Methods("GET")
	r.HandleFunc("/api/products/{id}", s.handleGetProduct).Methods("GET")
	r.HandleFunc("/api/vendors", s.handleListVendors).Methods("GET")

	r.HandleFunc("/api/cart", s.handleGetCart).Methods("GET")
	r.HandleFunc("/api/cart", s.handleAddToCart).Methods("POST")
	r.HandleFunc("/api/cart", s.handleSetCartQuantity).Methods("PATCH")
	r.HandleFunc("/api/cart", s.handleRemoveFromCart).Methods("DELETE")

	r.HandleFunc("/api/checkout", s.handleCheckout).Methods("POST")
	r.HandleFunc("/api/orders", s.handleGetOrders).Methods("GET")
	r.HandleFunc("/api/orders/history", s.handleOrderHistory).Methods("GET")
	r.HandleFunc("/api/orders/history/export", s.handleExportHistory).Methods("GET")
	r.HandleFunc("/api/orders/{id}/tracking", s.handleTracking).Methods("GET")

	r.HandleFunc("/api/chat", s.handleChat).Methods("POST")

	r.HandleFunc("/api/stats", s.handleStats).Methods("GET")

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	return r
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, metrics.Snapshot())
}
