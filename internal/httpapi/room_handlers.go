package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/webdevKhushi/expense-split-backend/internal/middleware"
	"github.com/webdevKhushi/expense-split-backend/internal/models"
	"github.com/webdevKhushi/expense-split-backend/internal/service"
)

// RoomHandler serves room management and the shared-expense ledger.
type RoomHandler struct {
	rooms *service.RoomService
}

// NewRoomHandler creates a RoomHandler over the given service.
func NewRoomHandler(rooms *service.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

type createRoomRequest struct {
	RoomName string `json:"room_name"`
}

type joinRoomRequest struct {
	RoomID int64 `json:"room_id"`
}

type roomExpenseRequest struct {
	Description string  `json:"desc"`
	Amount      float64 `json:"amount"`
}

// roomExpenseResponse mirrors a shared ledger entry on the wire.
type roomExpenseResponse struct {
	Username    string  `json:"username"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	People      int     `json:"people"`
	CreatedAt   int64   `json:"created_at"`
}

// roomIDFromPath parses the {roomId} path segment. A non-numeric id is a
// validation failure, not a 404.
func roomIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("roomId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid room id", service.ErrValidation)
	}
	return id, nil
}

// Create handles POST /api/rooms.
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createRoomRequest
	if !decodeBody(w, r, &body) {
		return
	}

	caller := middleware.GetUsername(r.Context())
	room, err := h.rooms.CreateRoom(r.Context(), caller, body.RoomName)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"roomId":    room.ID,
		"room_name": room.Name,
	})
}

// Join handles POST /api/join-room.
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	var body joinRoomRequest
	if !decodeBody(w, r, &body) {
		return
	}

	caller := middleware.GetUsername(r.Context())
	if err := h.rooms.JoinRoom(r.Context(), caller, body.RoomID); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Joined room successfully",
	})
}

// AddExpense handles POST /api/room/{roomId}/expense.
func (h *RoomHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDFromPath(r)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	var body roomExpenseRequest
	if !decodeBody(w, r, &body) {
		return
	}

	caller := middleware.GetUsername(r.Context())
	people, err := h.rooms.AddExpense(r.Context(), caller, roomID, body.Description, body.Amount)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Room expense added",
		"people":  people,
	})
}

// Participants handles GET /api/room/{roomId}/participants.
func (h *RoomHandler) Participants(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDFromPath(r)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	users, err := h.rooms.Participants(r.Context(), roomID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if users == nil {
		users = []string{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"users":   users,
	})
}

// Details handles GET /api/room/{roomId}/details.
func (h *RoomHandler) Details(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDFromPath(r)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	details, err := h.rooms.Details(r.Context(), roomID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	participants := make([]map[string]string, 0, len(details.Participants))
	for _, name := range details.Participants {
		participants = append(participants, map[string]string{"name": name})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"participants": participants,
		"created_by":   details.CreatedBy,
	})
}

// History handles GET /api/room/{roomId}/history.
func (h *RoomHandler) History(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDFromPath(r)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	caller := middleware.GetUsername(r.Context())
	expenses, err := h.rooms.History(r.Context(), caller, roomID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"expenses": toRoomExpenseResponses(expenses),
	})
}

func toRoomExpenseResponses(expenses []models.RoomExpense) []roomExpenseResponse {
	out := make([]roomExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = roomExpenseResponse{
			Username:    e.Username,
			Description: e.Description,
			Amount:      e.Amount,
			People:      e.People,
			CreatedAt:   e.CreatedAt,
		}
	}
	return out
}
