package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/webdevKhushi/expense-split-backend/internal/models"
	"github.com/webdevKhushi/expense-split-backend/internal/storage"
)

// RoomService owns room creation, membership and the shared-expense ledger.
type RoomService struct {
	store storage.Store
}

// NewRoomService creates a new RoomService with the given storage backend.
func NewRoomService(store storage.Store) *RoomService {
	return &RoomService{store: store}
}

// sameIdentity compares two usernames the way the creator gate does:
// trimmed and case-folded. Signup canonicalizes usernames, so for accounts
// created through this API this agrees with exact matching.
func sameIdentity(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// CreateRoom persists a new room owned by the caller and returns it.
// The creator is not auto-joined: membership (and the join marker entry)
// only ever comes from JoinRoom.
func (s *RoomService) CreateRoom(ctx context.Context, caller, name string) (*models.Room, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: room name is required", ErrValidation)
	}

	room := &models.Room{
		Name:      name,
		CreatedBy: caller,
	}
	if err := s.store.CreateRoom(ctx, room); err != nil {
		slog.Error("CreateRoom failed", "caller", caller, "error", err)
		return nil, err
	}

	slog.Info("Room created", "room_id", room.ID, "created_by", caller)
	return room, nil
}

// JoinRoom adds the caller to the room. Idempotent: a repeat join succeeds
// without a second membership row or a second marker entry.
func (s *RoomService) JoinRoom(ctx context.Context, caller string, roomID int64) error {
	if _, err := s.store.GetRoom(ctx, roomID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: room %d", ErrNotFound, roomID)
		}
		return err
	}

	joined, err := s.store.JoinRoom(ctx, roomID, caller)
	if err != nil {
		slog.Error("JoinRoom failed", "room_id", roomID, "caller", caller, "error", err)
		return err
	}

	slog.Info("JoinRoom ok", "room_id", roomID, "caller", caller, "newly_joined", joined)
	return nil
}

// AddExpense appends a shared ledger entry. Only the room's creator may
// post; the stored people value is the member count at write time.
//
// Amount zero is rejected along with negative values. The upstream contract
// treated zero as "missing" and it is preserved here: a zero-amount shared
// row only ever means a join marker.
func (s *RoomService) AddExpense(ctx context.Context, caller string, roomID int64, description string, amount float64) (int, error) {
	if strings.TrimSpace(description) == "" {
		return 0, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount is required", ErrValidation)
	}

	room, err := s.store.GetRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, fmt.Errorf("%w: room %d", ErrNotFound, roomID)
		}
		return 0, err
	}

	if !sameIdentity(caller, room.CreatedBy) {
		return 0, fmt.Errorf("%w: only the room creator can add expenses", ErrForbidden)
	}

	people, err := s.store.AddRoomExpense(ctx, roomID, caller, description, amount)
	if err != nil {
		slog.Error("AddExpense failed", "room_id", roomID, "caller", caller, "error", err)
		return 0, err
	}

	slog.Info("Room expense added", "room_id", roomID, "caller", caller, "amount", amount, "people", people)
	return people, nil
}

// Participants returns the usernames currently holding membership.
// Readable by any authenticated user; only History carries amounts and is
// membership-gated.
func (s *RoomService) Participants(ctx context.Context, roomID int64) ([]string, error) {
	return s.store.ListMembers(ctx, roomID)
}

// Details returns the room's creator and distinct participants.
// A missing room yields an empty creator rather than a not-found failure.
func (s *RoomService) Details(ctx context.Context, roomID int64) (*models.RoomDetails, error) {
	details := &models.RoomDetails{}

	room, err := s.store.GetRoom(ctx, roomID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	if room != nil {
		details.CreatedBy = room.CreatedBy
	}

	members, err := s.store.ListMembers(ctx, roomID)
	if err != nil {
		return nil, err
	}
	details.Participants = members

	return details, nil
}

// History returns every shared entry for the room, newest first.
// Requires the caller to hold a membership.
func (s *RoomService) History(ctx context.Context, caller string, roomID int64) ([]models.RoomExpense, error) {
	if roomID <= 0 {
		return nil, fmt.Errorf("%w: invalid room id", ErrValidation)
	}

	member, err := s.store.IsMember(ctx, roomID, caller)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, fmt.Errorf("%w: you are not a member of this room", ErrForbidden)
	}

	return s.store.ListRoomExpenses(ctx, roomID)
}
