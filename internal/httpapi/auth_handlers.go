package httpapi

import (
	"net/http"

	"github.com/webdevKhushi/expense-split-backend/internal/service"
)

// AuthHandler serves signup, login and email verification.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates an AuthHandler over the given service.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup handles POST /api/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var body signupRequest
	if !decodeBody(w, r, &body) {
		return
	}

	result, err := h.auth.Signup(r.Context(), body.Username, body.Password, body.Email)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if result.PendingVerification {
		writeJSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"username": result.User.Username,
			"message":  "verification email sent",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"username": result.User.Username,
		"token":    result.Token,
	})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if !decodeBody(w, r, &body) {
		return
	}

	token, err := h.auth.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"username": body.Username,
		"token":    token,
	})
}

// VerifyEmail handles GET /api/verify-email?token=.
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeError(w, http.StatusBadRequest, "token is required")
		return
	}

	if err := h.auth.VerifyEmail(r.Context(), token); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "email verified",
	})
}
