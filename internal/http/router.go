package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rental-backend/internal/handlers"
	"rental-backend/internal/middleware"
)

// NewRouter builds the admin API router
func NewRouter(
	authHandler *handlers.AuthHandler,
	roomHandler *handlers.RoomHandler,
	tenantHandler *handlers.TenantHandler,
	rateHandler *handlers.RateHandler,
	billHandler *handlers.BillHandler,
	paymentHandler *handlers.PaymentHandler,
	depositHandler *handlers.DepositHandler,
	dashboardHandler *handlers.DashboardHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.PanicRecovery)
	r.Use(middleware.MetricsMiddleware)

	// Health and metrics (no auth)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Public API routes - Authentication
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected API routes - Users (admin only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.Use(authMiddleware.RequireRole("admin"))
	usersAPI.HandleFunc("", authHandler.ListUsers).Methods("GET")
	usersAPI.HandleFunc("", authHandler.CreateUser).Methods("POST")
	usersAPI.HandleFunc("/{id}/active", authHandler.SetUserActive).Methods("PATCH")

	// Protected API routes - Rooms
	roomsAPI := r.PathPrefix("/api/rooms").Subrouter()
	roomsAPI.Use(authMiddleware.Authenticate)
	roomsAPI.HandleFunc("", roomHandler.ListRooms).Methods("GET")
	roomsAPI.HandleFunc("", roomHandler.CreateRoom).Methods("POST")
	roomsAPI.HandleFunc("/{id}", roomHandler.GetRoom).Methods("GET")
	roomsAPI.HandleFunc("/{id}", roomHandler.UpdateRoom).Methods("PUT")
	roomsAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(roomHandler.DeleteRoom)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Tenants
	tenantsAPI := r.PathPrefix("/api/tenants").Subrouter()
	tenantsAPI.Use(authMiddleware.Authenticate)
	tenantsAPI.HandleFunc("", tenantHandler.ListTenants).Methods("GET")
	tenantsAPI.HandleFunc("", tenantHandler.CreateTenant).Methods("POST")
	tenantsAPI.HandleFunc("/{id}", tenantHandler.GetTenant).Methods("GET")
	tenantsAPI.HandleFunc("/{id}", tenantHandler.UpdateTenant).Methods("PUT")
	tenantsAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(tenantHandler.DeleteTenant)).ServeHTTP).Methods("DELETE")
	tenantsAPI.HandleFunc("/{id}/statement.pdf", reportHandler.TenantStatementPDF).Methods("GET")

	// Protected API routes - Billing rates and meter readings
	ratesAPI := r.PathPrefix("/api/rates").Subrouter()
	ratesAPI.Use(authMiddleware.Authenticate)
	ratesAPI.HandleFunc("", rateHandler.ListRates).Methods("GET")
	ratesAPI.HandleFunc("", rateHandler.SetRates).Methods("POST")
	ratesAPI.HandleFunc("/{month}", rateHandler.GetRates).Methods("GET")

	readingsAPI := r.PathPrefix("/api/readings").Subrouter()
	readingsAPI.Use(authMiddleware.Authenticate)
	readingsAPI.HandleFunc("", rateHandler.ListReadings).Methods("GET")
	readingsAPI.HandleFunc("", rateHandler.RecordReading).Methods("POST")

	// Protected API routes - Bills
	billsAPI := r.PathPrefix("/api/bills").Subrouter()
	billsAPI.Use(authMiddleware.Authenticate)
	billsAPI.HandleFunc("", billHandler.ListBills).Methods("GET")
	billsAPI.HandleFunc("", billHandler.GenerateBill).Methods("POST")
	billsAPI.HandleFunc("/{id}", billHandler.GetBill).Methods("GET")
	billsAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(billHandler.DeleteBill)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Payments
	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("", paymentHandler.ListPayments).Methods("GET")
	paymentsAPI.HandleFunc("", paymentHandler.RecordPayment).Methods("POST")
	paymentsAPI.HandleFunc("/{id}", paymentHandler.GetPayment).Methods("GET")
	paymentsAPI.HandleFunc("/{id}/review", paymentHandler.ReviewPayment).Methods("POST")
	paymentsAPI.HandleFunc("/{id}/receipt.pdf", reportHandler.PaymentReceiptPDF).Methods("GET")

	// Protected API routes - Deposits
	depositsAPI := r.PathPrefix("/api/deposits").Subrouter()
	depositsAPI.Use(authMiddleware.Authenticate)
	depositsAPI.HandleFunc("", depositHandler.ListDeposits).Methods("GET")
	depositsAPI.HandleFunc("", depositHandler.RecordDeposit).Methods("POST")
	depositsAPI.HandleFunc("/{id}", depositHandler.GetDeposit).Methods("GET")
	depositsAPI.HandleFunc("/{id}/resolve", authMiddleware.RequireRole("admin")(http.HandlerFunc(depositHandler.ResolveDeposit)).ServeHTTP).Methods("POST")

	// Protected API routes - Dashboard and exports
	dashboardAPI := r.PathPrefix("/api/dashboard").Subrouter()
	dashboardAPI.Use(authMiddleware.Authenticate)
	dashboardAPI.HandleFunc("", dashboardHandler.GetOverview).Methods("GET")
	dashboardAPI.HandleFunc("/summary", dashboardHandler.GetSummary).Methods("GET")

	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.Authenticate)
	reportsAPI.HandleFunc("/bills/{month}.csv", reportHandler.MonthlyCSV).Methods("GET")

	return r
}

// NewTenantRouter builds the tenant portal router, served on its own port
func NewTenantRouter(
	portalHandler *handlers.TenantPortalHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.PanicRecovery)
	r.Use(middleware.MetricsMiddleware)

	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")

	r.HandleFunc("/portal/login", portalHandler.Login).Methods("POST")

	portalAPI := r.PathPrefix("/portal/api").Subrouter()
	portalAPI.Use(authMiddleware.AuthenticateTenant)
	portalAPI.HandleFunc("/statement", portalHandler.GetStatement).Methods("GET")
	portalAPI.HandleFunc("/statement.pdf", portalHandler.StatementPDF).Methods("GET")
	portalAPI.HandleFunc("/bills/{id}", portalHandler.GetBill).Methods("GET")
	portalAPI.HandleFunc("/payments", portalHandler.ListPayments).Methods("GET")
	portalAPI.HandleFunc("/payments", portalHandler.SubmitPayment).Methods("POST")

	return r
}
