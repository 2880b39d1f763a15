package http

import (
	"net/http"

	"rental-management-backend/internal/security"
	"rental-management-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles the service dependencies the router needs.
type Services struct {
	Auth     service.AuthService
	Item     service.ItemService
	Customer service.CustomerService
	Rental   service.RentalService
	Billing  service.BillingService
}

// NewRouter builds the full API route table. Everything under /api except
// the auth endpoints requires a valid access token.
func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	authHandler := NewAuthHandler(svcs.Auth)
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")

	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware(tokens))

	// Destructive catalog and record mutations additionally require the
	// admin role.
	admin := api.NewRoute().Subrouter()
	admin.Use(authMiddleware(tokens), adminOnly)

	itemHandler := NewItemHandler(svcs.Item)
	admin.HandleFunc("/items", itemHandler.Create).Methods("POST")
	protected.HandleFunc("/items", itemHandler.List).Methods("GET")
	protected.HandleFunc("/items/{id:[0-9]+}", itemHandler.Get).Methods("GET")
	admin.HandleFunc("/items/{id:[0-9]+}", itemHandler.Update).Methods("PUT")
	admin.HandleFunc("/items/{id:[0-9]+}", itemHandler.Delete).Methods("DELETE")

	customerHandler := NewCustomerHandler(svcs.Customer)
	protected.HandleFunc("/customers", customerHandler.Create).Methods("POST")
	protected.HandleFunc("/customers", customerHandler.List).Methods("GET")
	protected.HandleFunc("/customers/{id:[0-9]+}", customerHandler.Get).Methods("GET")
	protected.HandleFunc("/customers/{id:[0-9]+}", customerHandler.Update).Methods("PUT")
	protected.HandleFunc("/customers/{id:[0-9]+}", customerHandler.Delete).Methods("DELETE")

	rentalHandler := NewRentalHandler(svcs.Rental)
	protected.HandleFunc("/rentals", rentalHandler.Create).Methods("POST")
	protected.HandleFunc("/rentals", rentalHandler.List).Methods("GET")
	protected.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Get).Methods("GET")
	admin.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/rentals/{id:[0-9]+}/estimate", rentalHandler.Estimate).Methods("GET")
	protected.HandleFunc("/rentals/{id:[0-9]+}/extend", rentalHandler.Extend).Methods("PUT")
	protected.HandleFunc("/rentals/{id:[0-9]+}/cancel", rentalHandler.Cancel).Methods("POST")

	billingHandler := NewBillingHandler(svcs.Billing, svcs.Rental)
	protected.HandleFunc("/billings", billingHandler.List).Methods("GET")
	protected.HandleFunc("/billings/return", billingHandler.Return).Methods("POST")
	protected.HandleFunc("/billings/{id:[0-9]+}", billingHandler.Get).Methods("GET")
	admin.HandleFunc("/billings/{id:[0-9]+}", billingHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/billings/{id:[0-9]+}/pay", billingHandler.Pay).Methods("POST")

	return r
}
