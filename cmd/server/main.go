package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"rental-backend/internal/auth"
	"rental-backend/internal/cache"
	"rental-backend/internal/config"
	"rental-backend/internal/database"
	"rental-backend/internal/db"
	"rental-backend/internal/handlers"
	"rental-backend/internal/health"
	h "rental-backend/internal/http"
	"rental-backend/internal/middleware"
	"rental-backend/internal/monitoring"
	"rental-backend/internal/repositories"
	"rental-backend/internal/services"
	"rental-backend/migrations"
)

func main() {
	mode := flag.String("mode", "admin", "Server mode: admin or tenant")
	port := flag.Int("port", 0, "Server port (overrides config)")
	monitorPort := flag.Int("monitor-port", 9090, "Monitoring dashboard port (0 disables it)")
	flag.Parse()

	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	if err := cache.Init(); err != nil {
		log.Printf("[Cache] Redis unavailable, running without cache: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	migrator := database.NewMigrator(pool, migrations.FS, ".")
	if err := migrator.RunMigrations(ctx); err != nil {
		cancel()
		log.Fatalf("[Migrations] failed: %v", err)
	}
	cancel()

	// One monitoring server per deployment; the tenant process skips it so
	// both modes can run on the same host.
	if *monitorPort > 0 && *mode == "admin" {
		go monitoring.NewMonitoringServer(pool, *monitorPort).Start()
	}

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	roomRepo := repositories.NewRoomRepository(pool)
	tenantRepo := repositories.NewTenantRepository(pool)
	rateRepo := repositories.NewBillingRateRepository(pool)
	readingRepo := repositories.NewElectricReadingRepository(pool)
	billRepo := repositories.NewBillRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	depositRepo := repositories.NewDepositRepository(pool)

	// Services
	jwtManager := auth.NewJWTManager(cfg)
	userService := services.NewUserService(userRepo, jwtManager)
	roomService := services.NewRoomService(roomRepo)
	tenantService := services.NewTenantService(tenantRepo, roomRepo)
	rateService := services.NewRateService(rateRepo, readingRepo, roomRepo)
	billingService := services.NewBillingService(billRepo, paymentRepo, tenantRepo, roomRepo, rateRepo, readingRepo, cfg.Billing.DefaultDueDay)
	paymentService := services.NewPaymentService(paymentRepo, billRepo, billingService)
	depositService := services.NewDepositService(depositRepo, tenantRepo)
	dashboardService := services.NewDashboardService(billRepo, paymentRepo, roomRepo, tenantRepo)
	reportService := services.NewReportService(tenantRepo, paymentRepo, billingService, dashboardService)
	portalService := services.NewTenantPortalService(tenantRepo, billingService, paymentService, jwtManager)

	// Handlers and middleware
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo, tenantRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	var handler http.Handler
	var addr string

	switch *mode {
	case "admin":
		router := h.NewRouter(
			handlers.NewAuthHandler(userService),
			handlers.NewRoomHandler(roomService),
			handlers.NewTenantHandler(tenantService),
			handlers.NewRateHandler(rateService),
			handlers.NewBillHandler(billingService),
			handlers.NewPaymentHandler(paymentService),
			handlers.NewDepositHandler(depositService),
			handlers.NewDashboardHandler(dashboardService),
			handlers.NewReportHandler(reportService),
			healthHandler,
			authMiddleware,
		)
		handler = corsMiddleware(router)
		addr = fmt.Sprintf(":%d", pickPort(*port, cfg.Server.Port))
		log.Printf("[Server] admin API listening on %s", addr)

	case "tenant":
		router := h.NewTenantRouter(
			handlers.NewTenantPortalHandler(portalService, paymentService, reportService),
			healthHandler,
			authMiddleware,
		)
		handler = corsMiddleware(router)
		addr = fmt.Sprintf(":%d", pickPort(*port, cfg.Server.TenantPort))
		log.Printf("[Server] tenant portal listening on %s", addr)

	default:
		log.Fatalf("[Server] unknown mode %q, expected admin or tenant", *mode)
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("[Server] failed: %v", err)
	}
}

func pickPort(override, fallback int) int {
	if override > 0 {
		return override
	}
	return fallback
}
