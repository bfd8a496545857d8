package httpapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/webdevKhushi/expense-split-backend/internal/auth"
	"github.com/webdevKhushi/expense-split-backend/internal/middleware"
	"github.com/webdevKhushi/expense-split-backend/internal/service"
)

// NewRouter builds the full REST surface. Open routes: signup, login,
// email verification, liveness and metrics. Everything else requires a
// bearer session token.
func NewRouter(
	authSvc *service.AuthService,
	rooms *service.RoomService,
	expenses *service.ExpenseService,
	jwtManager *auth.JWTManager,
) http.Handler {
	authHandler := NewAuthHandler(authSvc)
	roomHandler := NewRoomHandler(rooms)
	expenseHandler := NewExpenseHandler(expenses)

	requireAuth := middleware.RequireAuth(jwtManager)
	protected := func(h http.HandlerFunc) http.Handler {
		return requireAuth(h)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/signup", authHandler.Signup)
	mux.HandleFunc("POST /api/login", authHandler.Login)
	mux.HandleFunc("GET /api/verify-email", authHandler.VerifyEmail)

	mux.Handle("POST /api/rooms", protected(roomHandler.Create))
	mux.Handle("POST /api/join-room", protected(roomHandler.Join))
	mux.Handle("POST /api/room/{roomId}/expense", protected(roomHandler.AddExpense))
	mux.Handle("GET /api/room/{roomId}/participants", protected(roomHandler.Participants))
	mux.Handle("GET /api/room/{roomId}/details", protected(roomHandler.Details))
	mux.Handle("GET /api/room/{roomId}/history", protected(roomHandler.History))

	mux.Handle("POST /api/expense", protected(expenseHandler.Add))
	mux.Handle("GET /api/expense/personal", protected(expenseHandler.History))

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Server is running"))
	})

	return middleware.Logging(middleware.Metrics(mux))
}
