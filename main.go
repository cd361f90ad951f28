package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"golang.org/x/time/rate"

	"portal-gateway/config"
	"portal-gateway/internal/adapter/gateway"
	"portal-gateway/internal/adapter/handler"
	"portal-gateway/internal/domain"
	sessionstore "portal-gateway/internal/infrastructure/session"
	"portal-gateway/internal/usecase"
	"portal-gateway/middleware"
	"portal-gateway/utils/logger"
	"portal-gateway/utils/otel"
)

func main() {
	// Handle healthcheck subcommand (for Docker healthcheck in distroless image)
	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		if err := runHealthcheck(); err != nil {
			fmt.Fprintf(os.Stderr, "Healthcheck failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	ctx := context.Background()

	// Local development convenience; a missing .env is fine
	_ = godotenv.Load()

	// Initialize OpenTelemetry
	otelCfg := otel.ConfigFromEnv()
	otelShutdown, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		fmt.Printf("Failed to initialize OpenTelemetry: %v\n", err)
		otelCfg.Enabled = false
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if otelShutdown != nil {
			if err := otelShutdown(shutdownCtx); err != nil {
				fmt.Printf("Failed to shutdown OpenTelemetry: %v\n", err)
			}
		}
	}()

	// Initialize structured logger with OTel support
	log := logger.Init(otelCfg.Enabled)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "configuration loaded",
		"erp_base_url", cfg.ERPBaseURL,
		"port", cfg.Port,
		"session_store", cfg.SessionStore,
		"session_ttl", cfg.SessionTTL)

	// Initialize session store
	var sessions domain.SessionStore
	switch cfg.SessionStore {
	case "sqlite":
		store, err := sessionstore.NewSQLiteStore(cfg.SessionDBPath)
		if err != nil {
			slog.ErrorContext(ctx, "failed to open session store", "error", err)
			os.Exit(1)
		}
		defer store.Close()
		go pruneLoop(ctx, store)
		sessions = store
	default:
		sessions = sessionstore.NewMemoryStore()
	}
	slog.InfoContext(ctx, "session store initialized", "kind", cfg.SessionStore)

	// Initialize the ERP gateway
	erp := gateway.NewERPGateway(gateway.Config{
		BaseURL:  cfg.ERPBaseURL,
		Client:   cfg.ERPClient,
		Username: cfg.ERPUsername,
		Password: cfg.ERPPassword,
		Timeout:  cfg.RemoteTimeout,
	}, log)

	// Initialize usecases
	loginUC := usecase.NewLogin(erp, sessions, gateway.OpLogin, cfg.SessionTTL, log)
	logoutUC := usecase.NewEndSession(sessions, log)
	recordsUC := usecase.NewFetchRecords(erp, log)
	profileUC := usecase.NewFetchProfile(erp, gateway.OpCustomerDetails, log)
	documentUC := usecase.NewFetchDocument(erp, gateway.OpInvoiceForm, log)

	// Initialize handlers
	authHandler := handler.NewAuth(loginUC, logoutUC, handler.CookieConfig{
		Name:   cfg.CookieName,
		TTL:    cfg.SessionTTL,
		Secure: cfg.CookieSecure,
	})
	recordsHandler := handler.NewRecords(recordsUC)
	profileHandler := handler.NewProfile(profileUC)
	documentHandler := handler.NewDocument(documentUC)
	healthHandler := handler.NewHealth()

	// Setup Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = handler.GoJSONSerializer{}
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	// Add OpenTelemetry tracing middleware
	if otelCfg.Enabled {
		e.Use(otelecho.Middleware(otelCfg.ServiceName))
	}

	// Middleware
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			ctx := c.Request().Context()
			if v.Error == nil {
				slog.InfoContext(ctx, "request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				slog.ErrorContext(ctx, "request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))

	e.Use(echomw.Recover())
	e.Use(middleware.SecurityHeaders())

	// Credentialed CORS for the browser frontend
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Requested-With"},
	}))

	// Public routes
	loginLimiter := middleware.NewRateLimiter(rate.Limit(1), 5)
	e.POST("/login", authHandler.Login, loginLimiter.Middleware())
	e.GET("/health", healthHandler.Handle)

	// Protected routes
	guard := middleware.SessionAuth(sessions, cfg.CookieName, log)
	g := e.Group("", guard)
	g.GET("/userDetails", profileHandler.Handle)
	g.GET("/inquiry", recordsHandler.Handle(usecase.RecordQuery{
		Op: gateway.OpInquiry, ParamKey: "USER_ID", TableField: "USER_INQUIRY_TABLE"}))
	g.GET("/salesOrders", recordsHandler.Handle(usecase.RecordQuery{
		Op: gateway.OpSalesOrders, ParamKey: "USER_ID", TableField: "USER_SALESORDER_TABLE"}))
	g.GET("/listDeliveries", recordsHandler.Handle(usecase.RecordQuery{
		Op: gateway.OpDeliveries, ParamKey: "USER_ID", TableField: "USER_LIST_DELIVERY_TABLE"}))
	g.GET("/invoices", recordsHandler.Handle(usecase.RecordQuery{
		Op: gateway.OpInvoices, ParamKey: "I_KUNNR", TableField: "ET_INVOICE_DATA"}))
	g.GET("/paymentAging", recordsHandler.Handle(usecase.RecordQuery{
		Op: gateway.OpPaymentAging, ParamKey: "USER_ID", TableField: "USER_PAYMENT_AGING_TABLE"}))
	g.GET("/creditDebitMemos", recordsHandler.Handle(usecase.RecordQuery{
		Op: gateway.OpCreditDebit, ParamKey: "USER_ID", TableField: "USER_CREDIT_DEBIT_MEMO_TABLE"}))
	g.GET("/overallSales", recordsHandler.Handle(usecase.RecordQuery{
		Op: gateway.OpOverallSales, ParamKey: "USER_ID", TableField: "USER_OVERALL_SALES_TABLE"}))
	g.POST("/api/customer/invoicePdf", documentHandler.Handle)
	g.POST("/logout", authHandler.Logout)

	// Start server
	address := fmt.Sprintf(":%s", cfg.Port)

	go func() {
		slog.InfoContext(ctx, "starting portal-gateway server", "address", address)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	slog.InfoContext(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "server exited properly")
}

// pruneLoop periodically removes expired rows from the SQLite session store.
func pruneLoop(ctx context.Context, store *sessionstore.SQLiteStore) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		if err := store.Prune(ctx); err != nil {
			slog.ErrorContext(ctx, "session prune failed", "error", err)
		}
	}
}

// runHealthcheck performs a health check against the local server
func runHealthcheck() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	client := &http.Client{
		Timeout: 2 * time.Second,
	}

	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%s/health", port))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned status: %d", resp.StatusCode)
	}

	return nil
}
