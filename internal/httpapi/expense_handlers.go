package httpapi

import (
	"net/http"

	"github.com/webdevKhushi/expense-split-backend/internal/middleware"
	"github.com/webdevKhushi/expense-split-backend/internal/models"
	"github.com/webdevKhushi/expense-split-backend/internal/service"
)

// ExpenseHandler serves the personal ledger.
type ExpenseHandler struct {
	expenses *service.ExpenseService
}

// NewExpenseHandler creates an ExpenseHandler over the given service.
func NewExpenseHandler(expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

type personalExpenseRequest struct {
	Description string  `json:"desc"`
	Amount      float64 `json:"amount"`
	People      int     `json:"people"`
}

type personalExpenseResponse struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	People      int     `json:"people"`
	RoomName    string  `json:"room_name,omitempty"`
	CreatedAt   int64   `json:"created_at"`
}

// Add handles POST /api/expense.
func (h *ExpenseHandler) Add(w http.ResponseWriter, r *http.Request) {
	var body personalExpenseRequest
	if !decodeBody(w, r, &body) {
		return
	}

	caller := middleware.GetUsername(r.Context())
	_, err := h.expenses.AddExpense(r.Context(), caller, body.Description, body.Amount, body.People)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
	})
}

// History handles GET /api/expense/personal.
func (h *ExpenseHandler) History(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetUsername(r.Context())
	expenses, err := h.expenses.History(r.Context(), caller)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"expenses": toPersonalExpenseResponses(expenses),
	})
}

func toPersonalExpenseResponses(expenses []models.PersonalExpense) []personalExpenseResponse {
	out := make([]personalExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = personalExpenseResponse{
			Description: e.Description,
			Amount:      e.Amount,
			People:      e.People,
			RoomName:    e.RoomName,
			CreatedAt:   e.CreatedAt,
		}
	}
	return out
}
