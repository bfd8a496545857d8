package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/webdevKhushi/expense-split-backend/internal/auth"
	"github.com/webdevKhushi/expense-split-backend/internal/httpapi"
	"github.com/webdevKhushi/expense-split-backend/internal/mailer"
	"github.com/webdevKhushi/expense-split-backend/internal/service"
	"github.com/webdevKhushi/expense-split-backend/internal/storage/sqlite"
	"github.com/webdevKhushi/expense-split-backend/pkg/logging"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logging.Setup()

	port := getEnv("PORT", "3000")
	dbPath := getEnv("DB_PATH", "./data/expenses.db")
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}
	baseURL := getEnv("BASE_URL", fmt.Sprintf("http://localhost:%s", port))
	requireVerification := getEnv("REQUIRE_EMAIL_VERIFICATION", "false") == "true"

	// Initialize SQLite storage
	store, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", dbPath)

	// Verification mail goes over SMTP when configured, otherwise to the log.
	var mail mailer.Mailer = mailer.LogMailer{}
	if smtpAddr := os.Getenv("SMTP_ADDR"); smtpAddr != "" {
		mail = mailer.NewSMTPMailer(
			smtpAddr,
			getEnv("SMTP_FROM", "noreply@localhost"),
			os.Getenv("SMTP_USERNAME"),
			os.Getenv("SMTP_PASSWORD"),
		)
		slog.Info("SMTP mailer configured", "addr", smtpAddr)
	}

	jwtManager := auth.NewJWTManager(jwtSecret)
	authenticator := auth.NewPasswordAuthenticator(store)

	authSvc := service.NewAuthService(authenticator, jwtManager, store, mail, requireVerification, baseURL)
	roomSvc := service.NewRoomService(store)
	expenseSvc := service.NewExpenseService(store)

	handler := httpapi.NewRouter(authSvc, roomSvc, expenseSvc, jwtManager)

	// h2c supports cleartext HTTP/2 behind a TLS-terminating proxy.
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := ":" + port
	slog.Info("Server starting", "address", addr, "verification_gated", requireVerification)
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
