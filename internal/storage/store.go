// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/webdevKhushi/expense-split-backend/internal/models"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for persistence operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateUser persists a new user. Fails if the username is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by username.
	// Returns (nil, nil) if the user does not exist.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// MarkUserVerified sets the verified flag for the given username.
	MarkUserVerified(ctx context.Context, username string) error

	// CreateRoom persists a new room and populates room.ID.
	CreateRoom(ctx context.Context, room *models.Room) error

	// GetRoom retrieves a room by id. Returns ErrNotFound if absent.
	GetRoom(ctx context.Context, roomID int64) (*models.Room, error)

	// JoinRoom records membership for (roomID, username) and, on first
	// join only, appends the zero-amount join marker entry. Both writes
	// happen in one transaction. Returns true if the membership was newly
	// created, false if the user had already joined.
	JoinRoom(ctx context.Context, roomID int64, username string) (bool, error)

	// IsMember reports whether the user holds a membership for the room.
	IsMember(ctx context.Context, roomID int64, username string) (bool, error)

	// ListMembers returns the usernames currently holding membership.
	ListMembers(ctx context.Context, roomID int64) ([]string, error)

	// AddRoomExpense appends a shared ledger entry. The member count is
	// read and the row written in one transaction; the count is stored on
	// the entry as its participant snapshot and returned.
	AddRoomExpense(ctx context.Context, roomID int64, username, description string, amount float64) (people int, err error)

	// ListRoomExpenses returns the room's shared entries, newest first.
	ListRoomExpenses(ctx context.Context, roomID int64) ([]models.RoomExpense, error)

	// AddPersonalExpense appends a personal ledger entry.
	AddPersonalExpense(ctx context.Context, expense *models.PersonalExpense) error

	// ListPersonalExpenses returns the user's personal entries, newest
	// first, with room names resolved where a row references a room.
	ListPersonalExpenses(ctx context.Context, username string) ([]models.PersonalExpense, error)

	// Close releases any resources held by the store.
	Close() error
}
